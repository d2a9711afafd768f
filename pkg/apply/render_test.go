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
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReport_RenderText(t *testing.T) {
	r := &Report{
		Operation:   OperationDeploy,
		Application: "web",
		Outcomes: []Outcome{
			{Source: "configmap.yaml", Kind: "ConfigMap", Name: "web-config", Status: StatusAlreadyExists},
			{Source: "deployment.yaml", Kind: "Deployment", Name: "web", Status: StatusCreated},
			Outcome{Source: "broken.yaml"}.fail(StatusParseFailed, errors.New("bad yaml")),
		},
	}
	r.Summary = newSummary(r.Outcomes)

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf))
	assert.Equal(t, `[Already Exists] ConfigMap/web-config (configmap.yaml)
[Created] Deployment/web (deployment.yaml)
[Parse Failed] broken.yaml: bad yaml
deploy web: 3 manifest(s), 1 created, 1 already exists, 1 parse failed
`, buf.String())
}

func TestReport_TableRows(t *testing.T) {
	r := &Report{Outcomes: []Outcome{
		{Source: "svc.yaml", Kind: "Service", Name: "web", Namespace: "shop", Status: StatusDeleted},
	}}
	assert.Len(t, r.TableHeader(), 6)
	assert.Equal(t, [][]string{{"svc.yaml", "Service", "web", "shop", "deleted", ""}}, r.TableRows())
}

func TestReport_DurationIsReadable(t *testing.T) {
	r := &Report{Operation: OperationDelete, Application: "web", Duration: Duration(1500 * time.Millisecond)}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"duration":"1.5s"`)

	var back Report
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, r.Duration, back.Duration)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(y), "duration: 1.5s\n")
}
