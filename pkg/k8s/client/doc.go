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

// Package client builds the single Kubernetes handle used by one appctl invocation.
//
// The handle bundles a typed clientset (node enumeration), a dynamic client
// (manifest create/get/delete), and a lazily populated REST mapper that turns
// manifest kinds into API resources. It is constructed once at process start
// and injected into the components that need it, rather than being rebuilt by
// each operation.
//
//	clients, err := client.New(client.Options{Kubeconfig: path})
//	if err != nil {
//	    return fmt.Errorf("failed to connect to cluster: %w", err)
//	}
//	gw := cluster.NewKubeGateway(clients, cluster.WithNamespace("default"))
//
// # Authentication Modes
//
// In-cluster (running as Kubernetes Pod/Job):
//   - Uses service account credentials from /var/run/secrets/kubernetes.io/serviceaccount/
//
// Out-of-cluster:
//   - Checks the explicit path first, then the KUBECONFIG environment variable
//   - Falls back to ~/.kube/config if KUBECONFIG not set
//
// # Testing
//
// Components accept the client-go interfaces, so tests use
// k8s.io/client-go/kubernetes/fake and k8s.io/client-go/dynamic/fake.
package client
