// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apply

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	manifestOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appctl_manifest_operations_total",
			Help: "Total number of processed manifests by outcome",
		},
		[]string{"operation", "status"},
	)

	manifestOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "appctl_manifest_operation_duration_seconds",
			Help:    "Time taken to process a single manifest",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"operation"},
	)

	applicationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appctl_application_runs_total",
			Help: "Total number of application runs",
		},
		[]string{"operation", "result"}, // success, partial, error
	)

	applicationRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "appctl_application_run_duration_seconds",
			Help:    "Time taken to process all manifests of an application",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"operation"},
	)
)

func recordOutcome(op Operation, s Status, d time.Duration) {
	manifestOperationsTotal.WithLabelValues(string(op), string(s)).Inc()
	manifestOperationDuration.WithLabelValues(string(op)).Observe(d.Seconds())
}

func recordRun(op Operation, result string, d time.Duration) {
	applicationRunsTotal.WithLabelValues(string(op), result).Inc()
	applicationRunDuration.WithLabelValues(string(op)).Observe(d.Seconds())
}
