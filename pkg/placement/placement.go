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

// Package placement resolves a chosen worker node to the node-selector
// constraint injected into workload manifests.
package placement

import (
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"

	"github.com/NVIDIA/appctl/pkg/k8s/node"
)

// HostnameLabel is the well-known node label used to pin workloads to a node.
const HostnameLabel = corev1.LabelHostname

// Placement is a single node-affinity constraint. The zero value means
// "no placement constraint".
type Placement struct {
	LabelKey   string `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	LabelValue string `json:"labelValue,omitempty" yaml:"labelValue,omitempty"`
}

// IsEmpty reports whether the placement constrains nothing. A placement with
// a key but no value is empty.
func (p Placement) IsEmpty() bool {
	return p.LabelKey == "" || p.LabelValue == ""
}

// Selector returns the node selector map for the placement, or nil when empty.
func (p Placement) Selector() map[string]string {
	if p.IsEmpty() {
		return nil
	}
	return map[string]string{p.LabelKey: p.LabelValue}
}

// String implements fmt.Stringer.
func (p Placement) String() string {
	if p.IsEmpty() {
		return "<none>"
	}
	return fmt.Sprintf("%s=%s", p.LabelKey, p.LabelValue)
}

// Resolve returns the hostname placement for the given node. A node without
// the hostname label yields a placement with an empty value, which callers
// treat as unconstrained.
func Resolve(n node.WorkerNode) Placement {
	value, ok := n.Label(HostnameLabel)
	if !ok || value == "" {
		slog.Warn("node has no hostname label, deploying without placement constraint",
			"node", n.Name,
			"label", HostnameLabel)
	}
	return Placement{LabelKey: HostnameLabel, LabelValue: value}
}

// FindNode returns the node with the given name.
func FindNode(nodes []node.WorkerNode, name string) (node.WorkerNode, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return n, true
		}
	}
	return node.WorkerNode{}, false
}
