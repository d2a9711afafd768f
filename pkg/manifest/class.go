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
	"k8s.io/apimachinery/pkg/util/sets"
)

// Class is the placement category of a document, derived from its kind.
type Class int

const (
	// ClassGeneric is any kind not otherwise known. Its pod spec is assumed
	// to live at spec.template.spec.
	ClassGeneric Class = iota
	// ClassWorkload is a known kind that schedules pods.
	ClassWorkload
	// ClassService is a Service. Services are never node constrained.
	ClassService
	// ClassPodless is a known kind that never schedules pods.
	ClassPodless
)

var (
	templatePodSpec = []string{"spec", "template", "spec"}

	workloadPodSpecs = map[string][]string{
		"Deployment":            templatePodSpec,
		"StatefulSet":           templatePodSpec,
		"DaemonSet":             templatePodSpec,
		"ReplicaSet":            templatePodSpec,
		"ReplicationController": templatePodSpec,
		"Job":                   templatePodSpec,
		"CronJob":               {"spec", "jobTemplate", "spec", "template", "spec"},
		"Pod":                   {"spec"},
	}

	podlessKinds = sets.New(
		"ConfigMap",
		"Secret",
		"Namespace",
		"ServiceAccount",
		"Role",
		"RoleBinding",
		"ClusterRole",
		"ClusterRoleBinding",
		"PersistentVolumeClaim",
		"PersistentVolume",
		"StorageClass",
		"Ingress",
		"IngressClass",
		"NetworkPolicy",
		"LimitRange",
		"ResourceQuota",
		"PodDisruptionBudget",
		"PriorityClass",
		"HorizontalPodAutoscaler",
		"Endpoints",
		"EndpointSlice",
		"CustomResourceDefinition",
		"ValidatingWebhookConfiguration",
		"MutatingWebhookConfiguration",
		"APIService",
	)
)

// Classify returns the class of kind and, for classes that schedule pods,
// the field path of the pod spec.
func Classify(kind string) (Class, []string) {
	if path, ok := workloadPodSpecs[kind]; ok {
		return ClassWorkload, path
	}
	switch {
	case kind == "Service":
		return ClassService, nil
	case podlessKinds.Has(kind):
		return ClassPodless, nil
	default:
		return ClassGeneric, templatePodSpec
	}
}

// Schedulable reports whether documents of this class receive node placement.
func (c Class) Schedulable() bool {
	return c == ClassWorkload || c == ClassGeneric
}

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case ClassWorkload:
		return "workload"
	case ClassService:
		return "service"
	case ClassPodless:
		return "podless"
	default:
		return "generic"
	}
}
