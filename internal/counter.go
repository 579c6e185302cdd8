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

// Counter tracks the number of relational comparisons performed by the
// partition, sort and scan primitives. The zero value is a fresh counter.
type Counter struct {
	n int64
}

// Inc records a single comparison.
func (c *Counter) Inc() {
	c.n++
}

// Add records n comparisons. Negative values are ignored so the count never decreases.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.n += n
	}
}

// Count returns the number of comparisons recorded so far.
func (c *Counter) Count() int64 {
	return c.n
}
