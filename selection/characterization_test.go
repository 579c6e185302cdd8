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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterization(t *testing.T) {
	var out bytes.Buffer
	c, err := NewCharacterization(CharacterizationConfig{
		Sizes:  []int{100, 1000},
		Trials: 25,
		Seed:   42,
	}, &out)
	require.NoError(t, err)

	rows, err := c.Run()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, row := range rows {
		assert.Equal(t, 25, row.Trials)
		assert.Zero(t, row.Mismatches)
		assert.Zero(t, row.Exhausted)
		assert.GreaterOrEqual(t, row.AvgRounds, 1.0)
		assert.GreaterOrEqual(t, row.AvgComparisons, float64(row.N-1))
	}
	assert.Equal(t, QuickSelectAlgorithm, rows[0].Algorithm)
	assert.Equal(t, LazySelectAlgorithm, rows[3].Algorithm)
	assert.Equal(t, 1000, rows[3].N)
	// the lazy scan alone charges 3n comparisons
	assert.GreaterOrEqual(t, rows[3].AvgComparisons, 3000.0)

	table := out.String()
	assert.Contains(t, table, "Selection Characterization")
	assert.Contains(t, table, "AvgCmp")
	assert.Equal(t, 2, strings.Count(table, "QuickSelect"))
	assert.Equal(t, 2, strings.Count(table, "LazySelect"))
}

func TestCharacterizationIsReproducible(t *testing.T) {
	cfg := CharacterizationConfig{
		Algorithms: []Algorithm{QuickSelectAlgorithm},
		Sizes:      []int{500},
		Trials:     10,
		Seed:       7,
	}
	c1, err := NewCharacterization(cfg, nil)
	require.NoError(t, err)
	c2, err := NewCharacterization(cfg, nil)
	require.NoError(t, err)

	rows1, err := c1.Run()
	require.NoError(t, err)
	rows2, err := c2.Run()
	require.NoError(t, err)
	assert.Equal(t, rows1, rows2)
}

func TestNewCharacterizationErrors(t *testing.T) {
	_, err := NewCharacterization(CharacterizationConfig{Trials: 1}, nil)
	assert.Error(t, err)

	_, err = NewCharacterization(CharacterizationConfig{Sizes: []int{1}, Trials: 1}, nil)
	assert.Error(t, err)

	_, err = NewCharacterization(CharacterizationConfig{Sizes: []int{10}}, nil)
	assert.Error(t, err)

	_, err = NewCharacterization(CharacterizationConfig{Sizes: []int{10}, Trials: 1, MaxIterations: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidMaxIterations)
}

func TestFingerprintIgnoresOrder(t *testing.T) {
	assert.Equal(t, fingerprint([]int64{1, 2, 3, 3}), fingerprint([]int64{3, 1, 3, 2}))
	assert.NotEqual(t, fingerprint([]int64{1, 2, 3}), fingerprint([]int64{1, 2, 4}))
	assert.NotEqual(t, trialSeed(1, QuickSelectAlgorithm, 10, 0), trialSeed(1, LazySelectAlgorithm, 10, 0))
}
