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

package deployment

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const (
	errGetDeployment   = "failed to get deployment"
	errListDeployments = "failed to list deployments"
)

// Deployment reads deployments.
type Deployment struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Deployment.
type Option func(*Deployment)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(d *Deployment) {
		d.log = log
	}
}

// New constructs a new Deployment.
func New(c cluster.Client, opts ...Option) *Deployment {
	d := &Deployment{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(d)
	}

	return d
}

// Get returns the named deployment.
func (d *Deployment) Get(ctx context.Context, nn types.NamespacedName) (*appsv1.Deployment, error) {
	dp, err := d.c.AppsV1().Deployments(nn.Namespace).Get(ctx, nn.Name, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errGetDeployment)
	}
	return dp, nil
}

// List returns the deployments in namespace, or in all namespaces if it is
// empty.
func (d *Deployment) List(ctx context.Context, namespace, selector string) ([]appsv1.Deployment, error) {
	d.log.Debug("Listing deployments", "scope", resource.Scope(namespace))

	l, err := d.c.AppsV1().Deployments(namespace).List(ctx, resource.ListOptions(selector, ""))
	if err != nil {
		return nil, errors.Wrap(err, errListDeployments)
	}
	return l.Items, nil
}

// Record is the flattened view of a deployment.
type Record struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Replicas          *int32            `json:"replicas"`
	AvailableReplicas *int32            `json:"availableReplicas"`
	Labels            map[string]string `json:"labels"`
	CreationTimestamp *string           `json:"creationTimestamp"`
	Selector          map[string]string `json:"selector"`
}

// NewRecord projects a deployment into a Record. Available replicas are
// absent until the controller has observed the deployment.
func NewRecord(d *appsv1.Deployment) Record {
	r := Record{
		Name:              d.GetName(),
		Namespace:         d.GetNamespace(),
		Replicas:          d.Spec.Replicas,
		Labels:            d.GetLabels(),
		CreationTimestamp: resource.Timestamp(d.GetCreationTimestamp()),
	}
	if d.Status.ObservedGeneration > 0 {
		r.AvailableReplicas = ptr.To(d.Status.AvailableReplicas)
	}
	if d.Spec.Selector != nil {
		r.Selector = d.Spec.Selector.MatchLabels
	}
	return r
}

// NewRecords projects every deployment in l.
func NewRecords(l []appsv1.Deployment) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
