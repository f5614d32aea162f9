/*
 * Solpp - Semantic analysis for the Solidity++ smart contract language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sema

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	tracingSourceUnit     = "source_unit"
	tracingContractPrefix = "contract."
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the duration of checking source units and contracts
	TracingEnabled bool
}

func (tracer Tracer) enabled() bool {
	return tracer.TracingEnabled && tracer.OnRecordTrace != nil
}

func (tracer Tracer) reportSourceUnitTrace(
	location string,
	contractCount int,
	errorCount int,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingSourceUnit,
		duration,
		[]attribute.KeyValue{
			attribute.String("location", location),
			attribute.Int("contracts", contractCount),
			attribute.Int("errors", errorCount),
		},
	)
}

func (tracer Tracer) reportContractTrace(
	name string,
	kind string,
	memberCount int,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingContractPrefix+name,
		duration,
		[]attribute.KeyValue{
			attribute.String("kind", kind),
			attribute.Int("members", memberCount),
		},
	)
}
