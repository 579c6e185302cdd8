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

	"github.com/orderstat/orderstat-go/internal"
	"github.com/orderstat/orderstat-go/sampling"
)

// QuickSelect narrows a [left, right] window around rank k with repeated
// randomized partitioning. The expected number of comparisons is linear in
// len(seq) for every input ordering.
type QuickSelect[T cmp.Ordered] struct {
	src sampling.Source
}

// NewQuickSelect creates a QuickSelect selector.
func NewQuickSelect[T cmp.Ordered](opts ...Option) (*QuickSelect[T], error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &QuickSelect[T]{
		src: o.source,
	}, nil
}

// Algorithm returns QuickSelectAlgorithm.
func (q *QuickSelect[T]) Algorithm() Algorithm {
	return QuickSelectAlgorithm
}

// Select returns the kth smallest element of seq.
func (q *QuickSelect[T]) Select(seq []T, k int) (Result[T], error) {
	if err := checkRank(len(seq), k); err != nil {
		return Result[T]{}, err
	}

	var counter internal.Counter
	target := k - 1
	left, right := 0, len(seq)-1
	// seq[left..right] always holds the kth smallest element.
	for rounds := 1; ; rounds++ {
		p := internal.RandomizedPartition(seq, left, right, q.src, &counter)
		switch {
		case p == target:
			return Result[T]{
				Value:       seq[p],
				Comparisons: counter.Count(),
				Rounds:      rounds,
			}, nil
		case p > target:
			right = p - 1
		default:
			left = p + 1
		}
	}
}
