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
	"sync"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/NVIDIA/appctl/pkg/cluster"
	"github.com/NVIDIA/appctl/pkg/k8s/node"
	"github.com/NVIDIA/appctl/pkg/manifest"
)

// fakeGateway is an in-memory cluster keyed by kind, namespace and name.
type fakeGateway struct {
	mu        sync.Mutex
	objects   map[string]*unstructured.Unstructured
	existsErr map[string]error
	createErr map[string]error
	calls     []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		objects:   map[string]*unstructured.Unstructured{},
		existsErr: map[string]error{},
		createErr: map[string]error{},
	}
}

func key(doc *manifest.Document) string {
	ns := doc.Namespace()
	if ns == "" {
		ns = "default"
	}
	return fmt.Sprintf("%s/%s/%s", doc.Kind(), ns, doc.Name())
}

func (f *fakeGateway) record(verb string, doc *manifest.Document) {
	f.calls = append(f.calls, verb+" "+key(doc))
}

func (f *fakeGateway) ResourceExists(_ context.Context, doc *manifest.Document) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get", doc)
	if err, ok := f.existsErr[key(doc)]; ok {
		return false, fmt.Errorf("%w: %w", cluster.ErrUnknownClusterState, err)
	}
	_, ok := f.objects[key(doc)]
	return ok, nil
}

func (f *fakeGateway) CreateResource(_ context.Context, doc *manifest.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create", doc)
	if err, ok := f.createErr[key(doc)]; ok {
		return err
	}
	k := key(doc)
	if _, ok := f.objects[k]; ok {
		return apierrors.NewAlreadyExists(schema.GroupResource{Resource: doc.Kind()}, doc.Name())
	}
	f.objects[k] = doc.Object.DeepCopy()
	return nil
}

func (f *fakeGateway) DeleteResource(_ context.Context, doc *manifest.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete", doc)
	k := key(doc)
	if _, ok := f.objects[k]; !ok {
		return apierrors.NewNotFound(schema.GroupResource{Resource: doc.Kind()}, doc.Name())
	}
	delete(f.objects, k)
	return nil
}

func (f *fakeGateway) ListNodes(context.Context) ([]node.WorkerNode, error) {
	return nil, nil
}

// reset forgets recorded calls but keeps cluster state.
func (f *fakeGateway) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeGateway) callCount(verb string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if len(c) > len(verb) && c[:len(verb)+1] == verb+" " {
			n++
		}
	}
	return n
}

func (f *fakeGateway) object(k string) *unstructured.Unstructured {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[k]
}

var _ cluster.Gateway = (*fakeGateway)(nil)
