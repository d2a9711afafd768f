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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/appctl/pkg/placement"
)

// Operation names the action applied to an application.
type Operation string

const (
	OperationDeploy Operation = "deploy"
	OperationDelete Operation = "delete"
)

// Status is the result of processing one manifest.
type Status string

const (
	StatusCreated       Status = "created"
	StatusAlreadyExists Status = "already_exists"
	StatusDeleted       Status = "deleted"
	StatusParseFailed   Status = "parse_failed"
	StatusClusterError  Status = "cluster_error"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{
	StatusCreated,
	StatusAlreadyExists,
	StatusDeleted,
	StatusParseFailed,
	StatusClusterError,
}

var titleCaser = cases.Title(language.English)

// IsFailure reports whether the status represents a failed manifest.
func (s Status) IsFailure() bool {
	return s == StatusParseFailed || s == StatusClusterError
}

// DisplayName returns the human readable form, e.g. "Already Exists".
func (s Status) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

// Outcome is the result of processing a single manifest file.
type Outcome struct {
	Source    string `json:"source" yaml:"source"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Status    Status `json:"status" yaml:"status"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`

	// Err is the underlying error for failed outcomes.
	Err error `json:"-" yaml:"-"`
}

// Resource returns "Kind/name", or the source file when the manifest could
// not be parsed.
func (o Outcome) Resource() string {
	if o.Kind == "" || o.Name == "" {
		return o.Source
	}
	return o.Kind + "/" + o.Name
}

// Summary counts outcomes per status.
type Summary map[Status]int

// Report is the result of one deploy or delete run.
type Report struct {
	RunID       string               `json:"runId" yaml:"runId"`
	Operation   Operation            `json:"operation" yaml:"operation"`
	Application string               `json:"application" yaml:"application"`
	Placement   *placement.Placement `json:"placement,omitempty" yaml:"placement,omitempty"`
	Outcomes    []Outcome            `json:"outcomes" yaml:"outcomes"`
	Summary     Summary              `json:"summary" yaml:"summary"`
	Duration    Duration             `json:"duration" yaml:"duration"`
}

// Duration is the wall time of a run. It serializes as a Go duration string
// such as "1.5s".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func newSummary(outcomes []Outcome) Summary {
	s := Summary{}
	for _, o := range outcomes {
		s[o.Status]++
	}
	return s
}

// Count returns the number of outcomes with the given status.
func (r *Report) Count(s Status) int {
	return r.Summary[s]
}

// Failures returns the number of failed outcomes.
func (r *Report) Failures() int {
	return r.Count(StatusParseFailed) + r.Count(StatusClusterError)
}

// HasFailures reports whether any manifest failed.
func (r *Report) HasFailures() bool {
	return r.Failures() > 0
}

// String returns a one-line summary such as
// "deploy web: 3 manifest(s), 2 created, 1 already exists".
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d manifest(s)", r.Operation, r.Application, len(r.Outcomes))
	for _, s := range Statuses {
		if n := r.Count(s); n > 0 {
			fmt.Fprintf(&b, ", %d %s", n, strings.ToLower(s.DisplayName()))
		}
	}
	return b.String()
}
