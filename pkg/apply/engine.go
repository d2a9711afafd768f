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
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/appctl/pkg/cluster"
	"github.com/NVIDIA/appctl/pkg/defaults"
	"github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/manifest"
	"github.com/NVIDIA/appctl/pkg/placement"
)

// ManifestSource provides application manifests. *manifest.Store satisfies it.
type ManifestSource interface {
	ListApplications(ctx context.Context) ([]string, error)
	LoadManifests(ctx context.Context, app string) ([]manifest.RawManifest, error)
}

// Option configures a Deployer or Remover.
type Option func(*engine)

// WithConcurrency limits the number of manifests processed at once.
func WithConcurrency(n int) Option {
	return func(e *engine) {
		e.concurrency = clampConcurrency(n)
	}
}

type engine struct {
	source      ManifestSource
	gateway     cluster.Gateway
	concurrency int
}

func newEngine(source ManifestSource, gw cluster.Gateway, opts ...Option) engine {
	e := engine{
		source:      source,
		gateway:     gw,
		concurrency: defaults.ApplyConcurrency,
	}
	for _, o := range opts {
		o(&e)
	}
	return e
}

func clampConcurrency(n int) int {
	switch {
	case n < 1:
		return 1
	case n > defaults.ApplyMaxConcurrency:
		return defaults.ApplyMaxConcurrency
	default:
		return n
	}
}

// step describes how an operation handles each document.
type step struct {
	op           Operation
	prepare      func(doc *manifest.Document) error
	precondition Precondition
	action       func(ctx context.Context, doc *manifest.Document) error
	done         Status
}

// run loads the application and processes every manifest. Batch level
// failures return an error before any cluster call is made.
func (e engine) run(ctx context.Context, app string, p *placement.Placement, s step) (*Report, error) {
	start := time.Now()

	apps, err := e.source.ListApplications(ctx)
	if err != nil {
		recordRun(s.op, "error", time.Since(start))
		return nil, err
	}
	if !slices.Contains(apps, app) {
		recordRun(s.op, "error", time.Since(start))
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("application %q not found", app),
			map[string]any{"application": app})
	}

	raws, err := e.source.LoadManifests(ctx, app)
	if err != nil {
		recordRun(s.op, "error", time.Since(start))
		return nil, err
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Operation:   s.op,
		Application: app,
	}
	if p != nil && !p.IsEmpty() {
		pc := *p
		report.Placement = &pc
	}

	slog.Info("processing application",
		"run_id", report.RunID,
		"operation", s.op,
		"application", app,
		"manifests", len(raws),
		"placement", p,
		"concurrency", e.concurrency,
	)

	// Each goroutine owns one slot, Wait is the join barrier.
	outcomes := make([]Outcome, len(raws))
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, raw := range raws {
		g.Go(func() error {
			outcomes[i] = e.process(ctx, raw, s)
			return nil
		})
	}
	// Per-document failures are recorded in the outcome slots, never returned.
	_ = g.Wait()

	report.Outcomes = outcomes
	report.Summary = newSummary(outcomes)
	report.Duration = Duration(time.Since(start))

	result := "success"
	if report.HasFailures() {
		result = "partial"
	}
	recordRun(s.op, result, time.Duration(report.Duration))

	slog.Info("application processed",
		"run_id", report.RunID,
		"summary", report.String(),
		"duration", time.Duration(report.Duration).Round(time.Millisecond),
	)

	return report, nil
}

func (e engine) process(ctx context.Context, raw manifest.RawManifest, s step) (out Outcome) {
	start := time.Now()
	out = Outcome{Source: raw.Source}

	defer func() {
		recordOutcome(s.op, out.Status, time.Since(start))
		if out.Status.IsFailure() {
			slog.Warn("manifest failed",
				"operation", s.op,
				"source", out.Source,
				"status", out.Status,
				"error", out.Err)
			return
		}
		slog.Debug("manifest processed",
			"operation", s.op,
			"source", out.Source,
			"resource", out.Resource(),
			"status", out.Status)
	}()

	doc, err := manifest.Parse(raw)
	if err != nil {
		return out.fail(StatusParseFailed, err)
	}
	out.Kind = doc.Kind()
	out.Name = doc.Name()
	out.Namespace = doc.Namespace()

	if s.prepare != nil {
		if err := s.prepare(doc); err != nil {
			return out.fail(StatusParseFailed, err)
		}
	}

	status, err := s.precondition.Check(ctx, e.gateway, doc)
	if err != nil {
		return out.fail(status, err)
	}
	if status != "" {
		out.Status = status
		return out
	}

	if err := s.action(ctx, doc); err != nil {
		return out.fail(StatusClusterError, err)
	}
	out.Status = s.done
	return out
}

func (o Outcome) fail(s Status, err error) Outcome {
	o.Status = s
	o.Err = err
	o.Error = err.Error()
	return o
}
