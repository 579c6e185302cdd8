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
	"fmt"
	"strings"
)

// Algorithm identifies a selection strategy.
type Algorithm int

const (
	QuickSelectAlgorithm Algorithm = iota + 1
	LazySelectAlgorithm
)

// Algorithms lists every supported strategy in a stable order.
var Algorithms = []Algorithm{QuickSelectAlgorithm, LazySelectAlgorithm}

func (a Algorithm) String() string {
	switch a {
	case QuickSelectAlgorithm:
		return "QuickSelect"
	case LazySelectAlgorithm:
		return "LazySelect"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name such as "QuickSelect", "quick_select" or
// "lazyselect" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	for _, a := range Algorithms {
		if strings.ToLower(a.String()) == normalized {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
