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

package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"

	"github.com/NVIDIA/appctl/pkg/placement"
)

// Document is one parsed manifest file.
type Document struct {
	// Source is the file the document was parsed from.
	Source string
	// Class determines whether and where node placement is injected.
	Class Class
	// Object is the decoded resource. Numbers decode as int64 or float64.
	Object *unstructured.Unstructured

	podSpecPath []string
}

// ParseError describes a manifest file that could not be turned into a
// Document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a raw manifest. The file must contain exactly one non-empty
// YAML or JSON document declaring apiVersion, kind and metadata.name.
func Parse(raw RawManifest) (*Document, error) {
	chunks, err := splitDocuments(raw.Data)
	if err != nil {
		return nil, &ParseError{Source: raw.Source, Err: err}
	}
	switch len(chunks) {
	case 0:
		return nil, &ParseError{Source: raw.Source, Err: fmt.Errorf("no document found")}
	case 1:
	default:
		return nil, &ParseError{Source: raw.Source,
			Err: fmt.Errorf("expected one document, found %d", len(chunks))}
	}

	obj := &unstructured.Unstructured{}
	if err := obj.UnmarshalJSON(chunks[0]); err != nil {
		return nil, &ParseError{Source: raw.Source, Err: err}
	}
	if obj.GetAPIVersion() == "" {
		return nil, &ParseError{Source: raw.Source, Err: fmt.Errorf("apiVersion is required")}
	}
	if obj.GetKind() == "" {
		return nil, &ParseError{Source: raw.Source, Err: fmt.Errorf("kind is required")}
	}
	if obj.GetName() == "" {
		return nil, &ParseError{Source: raw.Source, Err: fmt.Errorf("metadata.name is required")}
	}

	class, path := Classify(obj.GetKind())
	return &Document{
		Source:      raw.Source,
		Class:       class,
		Object:      obj,
		podSpecPath: path,
	}, nil
}

// splitDocuments returns the JSON form of every non-empty document in data.
func splitDocuments(data []byte) ([][]byte, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))

	var docs [][]byte
	for {
		chunk, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		if len(bytes.TrimSpace(chunk)) == 0 {
			continue
		}

		js, err := yaml.YAMLToJSON(chunk)
		if err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
		// comment-only documents
		if bytes.Equal(bytes.TrimSpace(js), []byte("null")) {
			continue
		}
		docs = append(docs, js)
	}
	return docs, nil
}

// Kind returns the resource kind.
func (d *Document) Kind() string {
	return d.Object.GetKind()
}

// Name returns metadata.name.
func (d *Document) Name() string {
	return d.Object.GetName()
}

// Namespace returns metadata.namespace, which may be empty.
func (d *Document) Namespace() string {
	return d.Object.GetNamespace()
}

// GroupVersionKind returns the document's GVK.
func (d *Document) GroupVersionKind() schema.GroupVersionKind {
	return d.Object.GroupVersionKind()
}

// PodSpecPath returns the field path of the pod spec, or nil when the
// document does not schedule pods.
func (d *Document) PodSpecPath() []string {
	return d.podSpecPath
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	if ns := d.Namespace(); ns != "" {
		return fmt.Sprintf("%s %s/%s", d.Kind(), ns, d.Name())
	}
	return fmt.Sprintf("%s %s", d.Kind(), d.Name())
}

// InjectNodeSelector pins the document's pods to the placement. It returns
// false without changes when the placement is empty or the document does not
// schedule pods. Any existing nodeSelector is replaced.
func (d *Document) InjectNodeSelector(p placement.Placement) (bool, error) {
	if p.IsEmpty() || !d.Class.Schedulable() {
		return false, nil
	}

	podSpec, err := EnsureMap(d.Object.Object, d.podSpecPath...)
	if err != nil {
		return false, &ParseError{Source: d.Source, Err: err}
	}
	podSpec["nodeSelector"] = map[string]any{p.LabelKey: p.LabelValue}
	return true, nil
}

// NodeSelector returns the document's current node selector.
func (d *Document) NodeSelector() (map[string]string, bool) {
	if !d.Class.Schedulable() {
		return nil, false
	}
	path := append(append([]string{}, d.podSpecPath...), "nodeSelector")
	sel, found, err := unstructured.NestedStringMap(d.Object.Object, path...)
	if err != nil || !found {
		return nil, false
	}
	return sel, true
}

// EnsureMap walks path from obj, creating missing or null maps along the
// way, and returns the map at the end of the path. Existing sibling fields
// are left untouched. A value on the path that is not a map is an error.
func EnsureMap(obj map[string]any, path ...string) (map[string]any, error) {
	if obj == nil {
		return nil, fmt.Errorf("object is nil")
	}

	cur := obj
	for i, key := range path {
		v, ok := cur[key]
		if !ok || v == nil {
			next := map[string]any{}
			cur[key] = next
			cur = next
			continue
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %s is %T, not an object",
				strings.Join(path[:i+1], "."), v)
		}
		cur = next
	}
	return cur, nil
}
