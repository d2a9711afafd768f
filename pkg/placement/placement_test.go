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

package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/appctl/pkg/k8s/node"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		node      node.WorkerNode
		wantValue string
		wantEmpty bool
	}{
		{
			name:      "hostname label present",
			node:      node.WorkerNode{Name: "worker-2", Labels: map[string]string{"kubernetes.io/hostname": "worker-2"}},
			wantValue: "worker-2",
		},
		{
			name:      "hostname differs from node name",
			node:      node.WorkerNode{Name: "ip-10-0-0-1", Labels: map[string]string{"kubernetes.io/hostname": "gpu-a"}},
			wantValue: "gpu-a",
		},
		{
			name:      "label missing",
			node:      node.WorkerNode{Name: "bare", Labels: map[string]string{"zone": "a"}},
			wantEmpty: true,
		},
		{
			name:      "nil labels",
			node:      node.WorkerNode{Name: "bare"},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.node)
			assert.Equal(t, HostnameLabel, p.LabelKey)
			assert.Equal(t, tt.wantValue, p.LabelValue)
			assert.Equal(t, tt.wantEmpty, p.IsEmpty())
		})
	}
}

func TestPlacement_Selector(t *testing.T) {
	assert.Nil(t, Placement{}.Selector())
	assert.Nil(t, Placement{LabelKey: HostnameLabel}.Selector())
	assert.Nil(t, Placement{LabelValue: "x"}.Selector())
	assert.Equal(t, map[string]string{HostnameLabel: "worker-2"},
		Placement{LabelKey: HostnameLabel, LabelValue: "worker-2"}.Selector())
}

func TestPlacement_String(t *testing.T) {
	assert.Equal(t, "<none>", Placement{}.String())
	assert.Equal(t, "kubernetes.io/hostname=worker-2",
		Placement{LabelKey: HostnameLabel, LabelValue: "worker-2"}.String())
}

func TestFindNode(t *testing.T) {
	nodes := []node.WorkerNode{{Name: "a"}, {Name: "b"}}

	n, ok := FindNode(nodes, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", n.Name)

	_, ok = FindNode(nodes, "c")
	assert.False(t, ok)
}
