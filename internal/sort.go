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

package internal

import "cmp"

// Sort sorts arr ascending in place. Ranges are kept on an explicit stack instead
// of the call stack and every range is split with the non-randomized Partition,
// so the comparison count on sorted, reverse-sorted or constant input is the
// classical n(n-1)/2.
func Sort[T cmp.Ordered](arr []T, counter *Counter) {
	if len(arr) < 2 {
		return
	}
	stack := make([][2]int, 0, 16)
	stack = append(stack, [2]int{0, len(arr) - 1})
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := Partition(arr, r[0], r[1], counter)
		if p-1 > r[0] {
			stack = append(stack, [2]int{r[0], p - 1})
		}
		if p+1 < r[1] {
			stack = append(stack, [2]int{p + 1, r[1]})
		}
	}
}
