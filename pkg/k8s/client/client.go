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

package client

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/restmapper"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface to allow easier mocking in tests.
// This enables using fake.NewClientset() which returns kubernetes.Interface.
type Interface = kubernetes.Interface

// Options tunes the REST configuration shared by all clients in a Clients handle.
type Options struct {
	// Kubeconfig is the path to the kubeconfig file. Empty means auto-discovery.
	Kubeconfig string
	// QPS and Burst override the client-go rate limiter when positive.
	QPS   float32
	Burst int
	// UserAgent is reported to the API server when set.
	UserAgent string
}

// Clients is the single authenticated cluster handle of one appctl invocation.
// It is built once at start-up and passed to every component that talks to
// the cluster. All members are safe for concurrent use.
type Clients struct {
	// Kube is the typed clientset, used for node enumeration.
	Kube Interface
	// Dynamic operates on arbitrary manifests as unstructured objects.
	Dynamic dynamic.Interface
	// Mapper resolves manifest kinds to API resources.
	Mapper meta.ResettableRESTMapper
	// Config is the REST configuration the clients were built from.
	Config *rest.Config
}

// New builds the cluster handle from the given options.
func New(opts Options) (*Clients, error) {
	config, err := BuildRestConfig(opts.Kubeconfig)
	if err != nil {
		return nil, err
	}

	if opts.QPS > 0 {
		config.QPS = opts.QPS
	}
	if opts.Burst > 0 {
		config.Burst = opts.Burst
	}
	if opts.UserAgent != "" {
		config.UserAgent = opts.UserAgent
	}

	kube, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	dyn, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Clients{
		Kube:    kube,
		Dynamic: dyn,
		Mapper:  NewRESTMapper(kube.Discovery()),
		Config:  config,
	}, nil
}

// NewRESTMapper returns a lazily populated mapper backed by an in-memory
// discovery cache. Discovery is only queried the first time a kind is mapped.
func NewRESTMapper(dc discovery.DiscoveryInterface) meta.ResettableRESTMapper {
	return restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(dc))
}

// BuildRestConfig resolves the REST configuration for the given kubeconfig.
//
// Parameters:
//   - kubeconfig: Path to kubeconfig file, or a list of paths joined by the
//     OS path list separator as in KUBECONFIG. If empty, uses automatic discovery:
//     1. KUBECONFIG environment variable
//     2. ~/.kube/config (if it exists)
//     3. In-cluster configuration (service account)
func BuildRestConfig(kubeconfig string) (*rest.Config, error) {
	kubeconfig = ResolveKubeconfig(kubeconfig)

	// Use InClusterConfig directly when no kubeconfig is available
	// This avoids the warning: "Neither --kubeconfig nor --master was specified"
	if kubeconfig == "" {
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules(kubeconfig), &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
	}
	return config, nil
}

// loadingRules maps a single path to an explicit file, which must exist, and
// a path list to merged files in precedence order, where missing entries are
// skipped.
func loadingRules(kubeconfig string) *clientcmd.ClientConfigLoadingRules {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	paths := KubeconfigPaths(kubeconfig)
	if len(paths) == 1 {
		rules.ExplicitPath = paths[0]
		rules.Precedence = nil
		return rules
	}
	rules.Precedence = paths
	return rules
}

// KubeconfigPaths splits a KUBECONFIG style path list, dropping empty entries.
func KubeconfigPaths(kubeconfig string) []string {
	var paths []string
	for _, p := range filepath.SplitList(kubeconfig) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// ResolveKubeconfig returns the kubeconfig path or path list that would be
// used for the given argument, or an empty string when in-cluster
// configuration applies.
func ResolveKubeconfig(kubeconfig string) string {
	if len(KubeconfigPaths(kubeconfig)) > 0 {
		return kubeconfig
	}

	if env := os.Getenv("KUBECONFIG"); len(KubeconfigPaths(env)) > 0 {
		return env
	}

	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ""
	}
	return path
}
