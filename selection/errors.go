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
	"errors"
	"fmt"
)

var (
	ErrInvalidRank          = errors.New("rank must be between 1 and the sequence length inclusive")
	ErrIterationExhausted   = errors.New("no sampling round was accepted within the iteration budget")
	ErrSequenceTooSmall     = errors.New("sequence is too small for lazy selection")
	ErrInvalidMaxIterations = errors.New("max iterations must be at least 1")
	ErrUnknownAlgorithm     = errors.New("unknown selection algorithm")
)

func checkRank(n int, k int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrInvalidRank, k, n)
	}
	return nil
}
