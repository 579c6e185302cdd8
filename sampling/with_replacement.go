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

package sampling

import (
	"errors"
)

var (
	ErrEmptyPopulation = errors.New("cannot sample from an empty population")
	ErrNegativeSize    = errors.New("sample size must not be negative")
)

// WithReplacement draws size items independently and uniformly, with
// replacement, from population. The result holds copies of the drawn values;
// it does not alias population.
func WithReplacement[T any](src Source, population []T, size int) ([]T, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size > 0 && len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	out := make([]T, size)
	Fill(src, population, out)
	return out, nil
}

// Fill overwrites every slot of dst with an independent uniform draw from
// population. population must be non-empty unless dst is empty.
func Fill[T any](src Source, population []T, dst []T) {
	n := len(population)
	for i := range dst {
		dst[i] = population[src.Intn(n)]
	}
}
