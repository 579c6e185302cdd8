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

// Package selection finds the kth smallest element (1-indexed) of an unsorted
// slice with either a randomized QuickSelect or a sample-based LazySelect.
//
// QuickSelect reorders the caller's slice in place; callers that need the
// original order must pass a copy. LazySelect only reads the slice and copies
// values into its own sample and candidate buffers. Neither algorithm resizes
// the slice. A selector owns a
// random source and is therefore not safe for concurrent use; create one per
// goroutine instead.
package selection

import (
	"cmp"
	"fmt"
)

// Result is the outcome of a single Select call.
type Result[T cmp.Ordered] struct {
	// Value is the kth smallest element.
	Value T
	// Comparisons is the number of relational comparisons made during the call.
	Comparisons int64
	// Rounds is the number of partition passes (QuickSelect) or sampling
	// rounds including the accepted one (LazySelect).
	Rounds int
}

// Selector finds order statistics.
type Selector[T cmp.Ordered] interface {
	// Select returns the kth smallest element of seq, 1 <= k <= len(seq).
	// seq may be reordered in place but keeps its length and contents.
	Select(seq []T, k int) (Result[T], error)
	// Algorithm identifies the strategy, e.g. for labeling comparative output.
	Algorithm() Algorithm
}

// NewSelector returns a selector for the given algorithm.
func NewSelector[T cmp.Ordered](alg Algorithm, opts ...Option) (Selector[T], error) {
	switch alg {
	case QuickSelectAlgorithm:
		q, err := NewQuickSelect[T](opts...)
		if err != nil {
			return nil, err
		}
		return q, nil
	case LazySelectAlgorithm:
		l, err := NewLazySelect[T](opts...)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// Select is a shorthand for building a selector and running it once.
func Select[T cmp.Ordered](alg Algorithm, seq []T, k int, opts ...Option) (T, error) {
	var zero T
	s, err := NewSelector[T](alg, opts...)
	if err != nil {
		return zero, err
	}
	res, err := s.Select(seq, k)
	if err != nil {
		return zero, err
	}
	return res.Value, nil
}
