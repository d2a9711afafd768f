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

// Package k8s provides Kubernetes integration for appctl.
//
// # Sub-packages
//
// client: the cluster handle built once per invocation
//
//	clients, err := client.New(client.Options{Kubeconfig: kubeconfig})
//
// node: worker node enumeration for interactive placement
//
//	nodes, err := node.List(ctx, clients.Kube, node.ListOptions{})
//
// # Thread Safety
//
// The clients in a handle are safe for concurrent use, which lets the
// manifest engine fan out per document over one connection pool.
package k8s
