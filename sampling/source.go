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
	"pgregory.net/rand"
)

// Source is a uniform random source. Both *rand.Rand from pgregory.net/rand and
// *rand.Rand from math/rand satisfy it, so callers can inject whichever
// generator they already carry.
//
// A Source is not safe for concurrent use unless the implementation says so.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a deterministic source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(seed)
}

// NewRandomSource returns a source initialized to a non-deterministic state.
func NewRandomSource() Source {
	return rand.New()
}

// UniformIndex returns an index drawn uniformly from [lo, hi].
func UniformIndex(src Source, lo int, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
