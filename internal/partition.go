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

import (
	"cmp"

	"github.com/orderstat/orderstat-go/sampling"
)

// Partition performs a single Lomuto pass over arr[left..right] using arr[right]
// as the pivot and returns the pivot's final index p. Afterwards every element in
// [left, p) is <= arr[p] and every element in (p, right] is >= arr[p].
// Exactly right-left comparisons are recorded on counter.
// Bounds are not validated: 0 <= left <= right < len(arr) is the caller's contract.
func Partition[T cmp.Ordered](arr []T, left int, right int, counter *Counter) int {
	pivot := arr[right]
	i := left // first slot not yet known to be <= pivot
	for j := left; j < right; j++ {
		counter.Inc()
		if arr[j] <= pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[right] = arr[right], arr[i]
	return i
}

// RandomizedPartition swaps a uniformly chosen element of arr[left..right] into
// position right and then partitions around it like Partition.
func RandomizedPartition[T cmp.Ordered](arr []T, left int, right int, src sampling.Source, counter *Counter) int {
	r := sampling.UniformIndex(src, left, right)
	arr[r], arr[right] = arr[right], arr[r]
	return Partition(arr, left, right, counter)
}
