/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import (
	"cmp"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/orderstat/orderstat-go/internal"
	"github.com/orderstat/orderstat-go/sampling"
)

// MinLazySelectLength is the smallest sequence LazySelect accepts: the
// smallest n for which the sample holds at least two elements.
const MinLazySelectLength = 2

// LazySelect is the Floyd-Rivest style lazy select: it samples ceil(n^3/4)
// elements with replacement, picks two sample elements a <= b that bracket rank
// k with high probability, and sorts only the elements in [a, b]. A round whose
// bracket misses rank k, or holds too many elements, is discarded and retried
// with a fresh sample, at most maxIterations times.
//
// An accepted round always yields the exact kth smallest element.
type LazySelect[T cmp.Ordered] struct {
	src           sampling.Source
	maxIterations int
	logger        log.Logger
}

// NewLazySelect creates a LazySelect selector.
func NewLazySelect[T cmp.Ordered](opts ...Option) (*LazySelect[T], error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &LazySelect[T]{
		src:           o.source,
		maxIterations: o.maxIterations,
		logger:        o.logger,
	}, nil
}

// Algorithm returns LazySelectAlgorithm.
func (l *LazySelect[T]) Algorithm() Algorithm {
	return LazySelectAlgorithm
}

// MaxIterations returns the retry budget.
func (l *LazySelect[T]) MaxIterations() int {
	return l.maxIterations
}

// Select returns the kth smallest element of seq. It fails with
// ErrIterationExhausted if no round is accepted within the retry budget; the
// returned Result then carries only the comparison and round counts.
func (l *LazySelect[T]) Select(seq []T, k int) (Result[T], error) {
	n := len(seq)
	if err := checkRank(n, k); err != nil {
		return Result[T]{}, err
	}
	if n < MinLazySelectLength {
		return Result[T]{}, fmt.Errorf("%w: n=%d, minimum is %d", ErrSequenceTooSmall, n, MinLazySelectLength)
	}

	var counter internal.Counter
	br := newBracket(n, k)
	sample := make([]T, br.sampleSize)
	candidates := make([]T, 0, int(br.maxCandidates)+1)

	for round := 1; round <= l.maxIterations; round++ {
		sampling.Fill(l.src, seq, sample)
		internal.Sort(sample, &counter)

		a := sample[br.lo-1]
		b := sample[br.hi-1]

		// rankA counts elements < a, rankB elements <= b.
		rankA, rankB := 0, 0
		candidates = candidates[:0]
		for _, v := range seq {
			rankA += internal.BoolToInt(v < a)
			rankB += internal.BoolToInt(v <= b)
			if a <= v && v <= b {
				candidates = append(candidates, v)
			}
		}
		counter.Add(3 * int64(n))

		idx := k - rankA - 1
		if float64(len(candidates)) <= br.maxCandidates && rankA < k && k <= rankB && idx < len(candidates) {
			internal.Sort(candidates, &counter)
			return Result[T]{
				Value:       candidates[idx],
				Comparisons: counter.Count(),
				Rounds:      round,
			}, nil
		}

		level.Debug(l.logger).Log(
			"msg", "lazy select round rejected",
			"round", round,
			"n", n,
			"k", k,
			"sample_size", br.sampleSize,
			"candidates", len(candidates),
			"rank_a", rankA,
			"rank_b", rankB,
		)
	}

	level.Warn(l.logger).Log(
		"msg", "lazy select exhausted its iteration budget",
		"n", n,
		"k", k,
		"max_iterations", l.maxIterations,
	)
	return Result[T]{
		Comparisons: counter.Count(),
		Rounds:      l.maxIterations,
	}, fmt.Errorf("%w: %d rounds, n=%d, k=%d", ErrIterationExhausted, l.maxIterations, n, k)
}

// bracket holds the per-call constants of a lazy select run.
type bracket struct {
	sampleSize    int     // |R| = ceil(n^3/4)
	lo            int     // 1-indexed position of a in the sorted sample
	hi            int     // 1-indexed position of b in the sorted sample
	maxCandidates float64 // 4 * n^3/4 + 2
}

func newBracket(n int, k int) bracket {
	fn := float64(n)
	n34 := math.Pow(fn, 0.75)
	n14 := math.Pow(fn, 0.25)
	sqrtN := math.Sqrt(fn)

	sampleSize := int(math.Ceil(n34))
	x := math.Floor(float64(k) / n14)

	return bracket{
		sampleSize:    sampleSize,
		lo:            max(int(math.Floor(x-sqrtN)), 1),
		hi:            min(int(math.Ceil(x+sqrtN)), sampleSize-1),
		maxCandidates: 4*n34 + 2,
	}
}
