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
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSelectMatchesSortedReference(t *testing.T) {
	for _, alg := range Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				minLen := 1
				if alg == LazySelectAlgorithm {
					minLen = MinLazySelectLength
				}
				seq := rapid.SliceOfN(rapid.IntRange(-100, 100), minLen, 150).Draw(t, "seq")
				k := rapid.IntRange(1, len(seq)).Draw(t, "k")
				seed := rapid.Uint64().Draw(t, "seed")

				expected := slices.Clone(seq)
				slices.Sort(expected)

				s, err := NewSelector[int](alg, WithSeed(seed))
				require.NoError(t, err)
				res, err := s.Select(seq, k)
				require.NoError(t, err)

				require.Equal(t, expected[k-1], res.Value)
				require.GreaterOrEqual(t, res.Rounds, 1)
				require.GreaterOrEqual(t, res.Comparisons, int64(0))
				// only reordered, never resized
				require.ElementsMatch(t, expected, seq)
			})
		})
	}
}

func TestSelectRejectsOutOfRangeRank(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alg := rapid.SampledFrom(Algorithms).Draw(t, "algorithm")
		seq := rapid.SliceOfN(rapid.Int(), 1, 50).Draw(t, "seq")
		k := rapid.OneOf(
			rapid.IntRange(-10, 0),
			rapid.IntRange(len(seq)+1, len(seq)+10),
		).Draw(t, "k")

		_, err := Select(alg, seq, k, WithSeed(1))
		require.ErrorIs(t, err, ErrInvalidRank)
	})
}
