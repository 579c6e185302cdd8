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
	"github.com/go-kit/log"

	"github.com/orderstat/orderstat-go/sampling"
)

// DefaultMaxIterations is the number of sampling rounds LazySelect attempts
// before giving up with ErrIterationExhausted.
const DefaultMaxIterations = 2000

// Option configures a selector.
type Option func(*options)

type options struct {
	source        sampling.Source
	maxIterations int
	logger        log.Logger
}

// WithSeed makes the selector draw from a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.source = sampling.NewSource(seed)
	}
}

// WithSource injects the random source used for pivots and samples.
func WithSource(src sampling.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithMaxIterations sets the LazySelect retry budget. QuickSelect does not use
// it, but every constructor rejects values below 1.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithLogger sets the logger that receives rejected-round and exhaustion events.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := &options{
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxIterations < 1 {
		return nil, ErrInvalidMaxIterations
	}
	if o.source == nil {
		o.source = sampling.NewRandomSource()
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	return o, nil
}
