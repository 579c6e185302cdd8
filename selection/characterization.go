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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/twmb/murmur3"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"

	"github.com/orderstat/orderstat-go/sampling"
)

// CharacterizationConfig describes a characterization run.
type CharacterizationConfig struct {
	Algorithms    []Algorithm // defaults to Algorithms
	Sizes         []int       // sequence lengths, each >= MinLazySelectLength
	Trials        int         // selections per (algorithm, size)
	Seed          uint64      // base seed, each trial derives its own
	MaxIterations int         // LazySelect budget, defaults to DefaultMaxIterations
	Logger        log.Logger
}

// CharacterizationRow summarizes the trials of one algorithm at one size.
type CharacterizationRow struct {
	Algorithm      Algorithm
	N              int
	Trials         int
	AvgComparisons float64
	AvgRounds      float64
	Exhausted      int
	Mismatches     int
}

// Characterization is a test/characterization harness that repeatedly selects
// a random rank from uniformly random integer sequences, checks every answer
// against a fully sorted copy and reports average comparison counts.
type Characterization struct {
	cfg CharacterizationConfig
	out io.Writer

	hfmt    string
	dfmt    string
	hStrArr []string
}

// NewCharacterization validates cfg and returns a harness printing to out.
func NewCharacterization(cfg CharacterizationConfig, out io.Writer) (*Characterization, error) {
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = Algorithms
	}
	if len(cfg.Sizes) == 0 {
		return nil, errors.New("at least one size is required")
	}
	for _, n := range cfg.Sizes {
		if n < MinLazySelectLength {
			return nil, fmt.Errorf("size %d is below the minimum %d", n, MinLazySelectLength)
		}
	}
	if cfg.Trials < 1 {
		return nil, errors.New("trials must be at least 1")
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.MaxIterations < 1 {
		return nil, ErrInvalidMaxIterations
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}
	if out == nil {
		out = io.Discard
	}
	c := &Characterization{cfg: cfg, out: out}
	c.assembleStrings()
	return c, nil
}

// Run executes every trial, prints one table row per (algorithm, size) and
// returns the rows. Wrong answers and reordering violations are aggregated into
// the returned error; IterationExhausted outcomes are only counted.
func (c *Characterization) Run() ([]CharacterizationRow, error) {
	c.printf(c.hfmt, stringsToAny(c.hStrArr)...)

	var errs error
	rows := make([]CharacterizationRow, 0, len(c.cfg.Algorithms)*len(c.cfg.Sizes))
	for _, alg := range c.cfg.Algorithms {
		for _, n := range c.cfg.Sizes {
			row, err := c.doTrialsAtN(alg, n)
			errs = multierr.Append(errs, err)
			rows = append(rows, row)
			c.printf(c.dfmt,
				row.Algorithm.String(),
				row.N,
				row.Trials,
				row.AvgComparisons,
				row.AvgRounds,
				row.Exhausted,
				row.Mismatches,
			)
		}
	}
	return rows, errs
}

func (c *Characterization) doTrialsAtN(alg Algorithm, n int) (CharacterizationRow, error) {
	row := CharacterizationRow{Algorithm: alg, N: n, Trials: c.cfg.Trials}
	var errs error
	var sumComparisons, sumRounds float64

	for t := 0; t < c.cfg.Trials; t++ {
		src := sampling.NewSource(trialSeed(c.cfg.Seed, alg, n, t))
		seq := uniformValues[int64](src, n, int64(10*n))
		k := 1 + src.Intn(n)

		expected := slices.Clone(seq)
		slices.Sort(expected)
		before := fingerprint(seq)

		selector, err := NewSelector[int64](alg,
			WithSource(src),
			WithMaxIterations(c.cfg.MaxIterations),
			WithLogger(c.cfg.Logger),
		)
		if err != nil {
			return row, err
		}
		res, err := selector.Select(seq, k)
		sumComparisons += float64(res.Comparisons)
		sumRounds += float64(res.Rounds)

		switch {
		case errors.Is(err, ErrIterationExhausted):
			row.Exhausted++
		case err != nil:
			errs = multierr.Append(errs, fmt.Errorf("%s n=%d trial=%d: %w", alg, n, t, err))
		case res.Value != expected[k-1]:
			row.Mismatches++
			level.Error(c.cfg.Logger).Log("msg", "wrong order statistic",
				"algorithm", alg, "n", n, "trial", t, "k", k, "got", res.Value, "want", expected[k-1])
			errs = multierr.Append(errs, fmt.Errorf("%s n=%d trial=%d k=%d: got %d, want %d",
				alg, n, t, k, res.Value, expected[k-1]))
		}
		if after := fingerprint(seq); after != before {
			level.Error(c.cfg.Logger).Log("msg", "sequence contents changed",
				"algorithm", alg, "n", n, "trial", t)
			errs = multierr.Append(errs, fmt.Errorf("%s n=%d trial=%d: sequence is no longer a permutation of its input",
				alg, n, t))
		}
	}

	row.AvgComparisons = sumComparisons / float64(c.cfg.Trials)
	row.AvgRounds = sumRounds / float64(c.cfg.Trials)
	return row, errs
}

// trialSeed derives an independent, reproducible seed for one trial.
func trialSeed(base uint64, alg Algorithm, n int, trial int) uint64 {
	key := alg.String() + "/" + strconv.Itoa(n) + "/" + strconv.Itoa(trial)
	return murmur3.SeedSum64(base, []byte(key))
}

// uniformValues returns n integers drawn uniformly from [-bound, bound].
func uniformValues[T constraints.Signed](src sampling.Source, n int, bound T) []T {
	out := make([]T, n)
	span := int(2*bound + 1)
	for i := range out {
		out[i] = T(src.Intn(span)) - bound
	}
	return out
}

// fingerprint is an order-independent hash of the multiset of values in seq.
func fingerprint(seq []int64) uint64 {
	var sum uint64
	var scratch [8]byte
	for _, v := range seq {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		sum += xxhash.Sum64(scratch[:])
	}
	return sum
}

func (c *Characterization) assembleStrings() {
	columns := []struct {
		name      string
		headerFmt string
		dataFmt   string
	}{
		{"Algorithm", "%12s", "%12s"},
		{"n", "%10s", "%10d"},
		{"Trials", "%7s", "%7d"},
		{"AvgCmp", "%14s", "%14.1f"},
		{"AvgRounds", "%10s", "%10.3f"},
		{"Exhausted", "%10s", "%10d"},
		{"Mismatch", "%9s", "%9d"},
	}
	c.hStrArr = make([]string, len(columns))

	headerLine := "\nSelection Characterization\n"
	dataLine := ""
	for i, col := range columns {
		c.hStrArr[i] = col.name
		sep := "\t"
		if i == len(columns)-1 {
			sep = "\n"
		}
		headerLine += col.headerFmt + sep
		dataLine += col.dataFmt + sep
	}
	c.hfmt = headerLine
	c.dfmt = dataLine
}

func (c *Characterization) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func stringsToAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
