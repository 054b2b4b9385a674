// /*
// Copyright 2025 The Upbound Authors.
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
// */

package pod

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

// Record is the flattened view of a pod returned by list_pods.
type Record struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	IP                *string           `json:"ip"`
	Status            *string           `json:"status"`
	Labels            map[string]string `json:"labels"`
	CreationTimestamp *string           `json:"creationTimestamp"`
	Node              *string           `json:"node"`
	Containers        []string          `json:"containers"`
}

// NewRecord projects a pod into a Record.
func NewRecord(p *corev1.Pod) Record {
	return Record{
		Name:              p.GetName(),
		Namespace:         p.GetNamespace(),
		IP:                resource.Optional(p.Status.PodIP),
		Status:            Phase(p),
		Labels:            p.GetLabels(),
		CreationTimestamp: resource.Timestamp(p.GetCreationTimestamp()),
		Node:              resource.Optional(p.Spec.NodeName),
		Containers:        ContainerNames(p),
	}
}

// NewRecords projects every pod in l.
func NewRecords(l []corev1.Pod) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}

// ContainerNames returns the names of the pod's containers in declared order.
// The result is never nil.
func ContainerNames(p *corev1.Pod) []string {
	names := make([]string, 0, len(p.Spec.Containers))
	for _, c := range p.Spec.Containers {
		names = append(names, c.Name)
	}
	return names
}

// Phase returns the pod's phase, or nil if it has not been reported yet.
func Phase(p *corev1.Pod) *string {
	return resource.Optional(string(p.Status.Phase))
}
