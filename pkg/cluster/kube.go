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

package cluster

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/appctl/pkg/defaults"
	apperrors "github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/k8s/client"
	"github.com/NVIDIA/appctl/pkg/k8s/node"
	"github.com/NVIDIA/appctl/pkg/manifest"
)

// KubeGateway implements Gateway with client-go. Resources are addressed
// through the dynamic client, with kinds resolved by a REST mapper.
type KubeGateway struct {
	kube      client.Interface
	dynamic   dynamic.Interface
	mapper    meta.RESTMapper
	namespace string
	timeout   time.Duration
	limiter   *rate.Limiter
}

// Option configures a KubeGateway.
type Option func(*KubeGateway)

// WithNamespace sets the namespace used for namespaced resources that do
// not declare one.
func WithNamespace(ns string) Option {
	return func(g *KubeGateway) {
		if ns != "" {
			g.namespace = ns
		}
	}
}

// WithTimeout bounds every individual cluster call.
func WithTimeout(d time.Duration) Option {
	return func(g *KubeGateway) {
		g.timeout = d
	}
}

// WithRateLimit throttles create and delete calls. A non-positive qps
// disables throttling.
func WithRateLimit(qps float64, burst int) Option {
	return func(g *KubeGateway) {
		if qps <= 0 {
			g.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(qps), burst)
	}
}

// NewKubeGateway returns a gateway over the given clients.
func NewKubeGateway(kube client.Interface, dyn dynamic.Interface, mapper meta.RESTMapper, opts ...Option) *KubeGateway {
	g := &KubeGateway{
		kube:      kube,
		dynamic:   dyn,
		mapper:    mapper,
		namespace: defaults.Namespace,
		timeout:   defaults.K8sRequestTimeout,
		limiter:   rate.NewLimiter(rate.Limit(defaults.K8sClientQPS), defaults.K8sClientBurst),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewFromClients returns a gateway over an already constructed client handle.
func NewFromClients(c *client.Clients, opts ...Option) *KubeGateway {
	return NewKubeGateway(c.Kube, c.Dynamic, c.Mapper, opts...)
}

// ResourceExists implements Gateway.
func (g *KubeGateway) ResourceExists(ctx context.Context, doc *manifest.Document) (bool, error) {
	ri, namespace, err := g.resourceFor(doc)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrUnknownClusterState, doc, err)
	}

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	_, err = ri.Get(ctx, doc.Name(), metav1.GetOptions{})
	switch {
	case err == nil:
		slog.Debug("resource exists", "source", doc.Source, "kind", doc.Kind(),
			"name", doc.Name(), "namespace", namespace)
		return true, nil
	case apierrors.IsNotFound(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s: %w", ErrUnknownClusterState, doc, err)
	}
}

// CreateResource implements Gateway.
func (g *KubeGateway) CreateResource(ctx context.Context, doc *manifest.Document) error {
	ri, namespace, err := g.resourceFor(doc)
	if err != nil {
		return err
	}

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	obj := doc.Object.DeepCopy()
	obj.SetNamespace(namespace)

	if _, err := ri.Create(ctx, obj, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("failed to create %s: %w", doc, err)
	}

	slog.Debug("resource created", "source", doc.Source, "kind", doc.Kind(),
		"name", doc.Name(), "namespace", namespace)
	return nil
}

// DeleteResource implements Gateway. Dependents are removed in the background.
func (g *KubeGateway) DeleteResource(ctx context.Context, doc *manifest.Document) error {
	ri, namespace, err := g.resourceFor(doc)
	if err != nil {
		return err
	}

	ctx, cancel := g.callContext(ctx)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	opts := metav1.DeleteOptions{
		PropagationPolicy: ptr.To(metav1.DeletePropagationBackground),
	}
	if err := ri.Delete(ctx, doc.Name(), opts); err != nil {
		return fmt.Errorf("failed to delete %s: %w", doc, err)
	}

	slog.Debug("resource deleted", "source", doc.Source, "kind", doc.Kind(),
		"name", doc.Name(), "namespace", namespace)
	return nil
}

// ListNodes implements Gateway.
func (g *KubeGateway) ListNodes(ctx context.Context) ([]node.WorkerNode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.K8sNodeListTimeout)
	defer cancel()

	nodes, err := node.Workers(ctx, g.kube, node.ListOptions{})
	if err != nil {
		code := apperrors.ErrCodeUnavailable
		if stderrors.Is(err, context.DeadlineExceeded) {
			code = apperrors.ErrCodeTimeout
		}
		return nil, apperrors.Wrap(code, "cluster node enumeration failed", err)
	}
	return nodes, nil
}

func (g *KubeGateway) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// resourceFor resolves the dynamic resource client for doc and the namespace
// the resource lives in. The namespace is empty for cluster-scoped kinds.
func (g *KubeGateway) resourceFor(doc *manifest.Document) (dynamic.ResourceInterface, string, error) {
	mapping, err := g.restMapping(doc)
	if err != nil {
		return nil, "", err
	}

	if mapping.Scope.Name() != meta.RESTScopeNameNamespace {
		return g.dynamic.Resource(mapping.Resource), "", nil
	}

	ns := doc.Namespace()
	if ns == "" {
		ns = g.namespace
	}
	return g.dynamic.Resource(mapping.Resource).Namespace(ns), ns, nil
}

func (g *KubeGateway) restMapping(doc *manifest.Document) (*meta.RESTMapping, error) {
	gvk := doc.GroupVersionKind()
	mapping, err := g.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil && meta.IsNoMatchError(err) {
		// The kind may have been registered after discovery was cached.
		if r, ok := g.mapper.(meta.ResettableRESTMapper); ok {
			r.Reset()
			mapping, err = g.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to map %s to a resource: %w", gvk, err)
	}
	return mapping, nil
}

var _ Gateway = (*KubeGateway)(nil)
