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

package namespace

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const errListNamespaces = "failed to list namespaces"

// Namespace reads namespaces.
type Namespace struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Namespace.
type Option func(*Namespace)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(n *Namespace) {
		n.log = log
	}
}

// New constructs a new Namespace.
func New(c cluster.Client, opts ...Option) *Namespace {
	n := &Namespace{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(n)
	}

	return n
}

// List returns every namespace in the cluster.
func (n *Namespace) List(ctx context.Context) ([]corev1.Namespace, error) {
	n.log.Debug("Listing namespaces", "scope", resource.AllNamespaces)

	l, err := n.c.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errListNamespaces)
	}
	return l.Items, nil
}

// Record is the flattened view of a namespace.
type Record struct {
	Name              string  `json:"name"`
	Status            *string `json:"status"`
	CreationTimestamp *string `json:"creationTimestamp"`
}

// NewRecord projects a namespace into a Record.
func NewRecord(ns *corev1.Namespace) Record {
	return Record{
		Name:              ns.GetName(),
		Status:            resource.Optional(string(ns.Status.Phase)),
		CreationTimestamp: resource.Timestamp(ns.GetCreationTimestamp()),
	}
}

// NewRecords projects every namespace in l.
func NewRecords(l []corev1.Namespace) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
