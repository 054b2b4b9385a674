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

// Package logs resolves resource references to pods and aggregates the logs
// of those pods.
package logs

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/deployment"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/job"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/pod"
	"github.com/upbound/kube-readonly-mcp-server/internal/toolerr"
)

// DefaultNamespace is used when a resource is named without a namespace.
const DefaultNamespace = "default"

// Resource types that can be resolved by name.
const (
	TypePod        = "pod"
	TypeDeployment = "deployment"
	TypeJob        = "job"
)

const (
	errMissingTarget   = "Either name or labelSelector must be provided"
	errUnsupportedType = "Unsupported resource type: %s or missing required parameters"
	errNoPods          = "No pods found matching the specified criteria"
	errNotFound        = "%s %s not found in namespace %s"
	errNoSelector      = "%s %s in namespace %s has no pod selector"
	errOwnerSelector   = "failed to read %s pod selector"
)

// A Request identifies the pods whose logs should be fetched.
type Request struct {
	// ResourceType is one of pod, deployment or job, compared case
	// insensitively. It is only consulted when Name is set.
	ResourceType string

	// Namespace to search. Defaults to DefaultNamespace when Name is set,
	// otherwise an empty namespace searches all namespaces.
	Namespace string

	Name          string
	LabelSelector string
}

// A Resolution is the concrete set of pods a Request refers to.
type Resolution struct {
	// Namespace is the effective namespace. Empty means all namespaces.
	Namespace string

	// LabelSelector is the effective selector: either the one supplied or
	// the one derived from a deployment or job.
	LabelSelector string

	// Pods in the order the API server listed them.
	Pods []corev1.Pod
}

// Resolver turns a Request into the pods it refers to.
type Resolver struct {
	log         logging.Logger
	pods        *pod.Pod
	deployments *deployment.Deployment
	jobs        *job.Job
}

// ResolverOption modifies the underlying Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger overrides the default no-op logger.
func WithResolverLogger(log logging.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver constructs a new Resolver.
func NewResolver(c cluster.Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{log: logging.NewNopLogger()}

	for _, o := range opts {
		o(r)
	}

	r.pods = pod.New(c, pod.WithLogger(r.log))
	r.deployments = deployment.New(c, deployment.WithLogger(r.log))
	r.jobs = job.New(c, job.WithLogger(r.log))
	return r
}

// Resolve returns the pods req refers to. Errors are *toolerr.Error values;
// every one of them means the request as a whole cannot be served.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolution, error) {
	if req.Name == "" && req.LabelSelector == "" {
		return nil, toolerr.New(toolerr.InvalidArgument, errMissingTarget)
	}

	res := &Resolution{Namespace: req.Namespace, LabelSelector: req.LabelSelector}
	if req.Name != "" && res.Namespace == "" {
		res.Namespace = DefaultNamespace
	}
	nn := types.NamespacedName{Namespace: res.Namespace, Name: req.Name}

	log := r.log.WithValues("resourceType", req.ResourceType, "scope", resource.Scope(res.Namespace))

	var err error
	switch t := strings.ToLower(req.ResourceType); {
	case req.Name != "" && t == TypePod:
		log.Debug("Resolving pod by name", "name", req.Name)
		res.Pods, err = r.byName(ctx, nn)
	case req.Name != "" && t == TypeDeployment:
		log.Debug("Resolving pods of deployment", "name", req.Name)
		res.LabelSelector, res.Pods, err = r.byOwner(ctx, "Deployment", nn, func(ctx context.Context, nn types.NamespacedName) (*metav1.LabelSelector, error) {
			d, err := r.deployments.Get(ctx, nn)
			if err != nil {
				return nil, err
			}
			return d.Spec.Selector, nil
		})
	case req.Name != "" && t == TypeJob:
		log.Debug("Resolving pods of job", "name", req.Name)
		res.LabelSelector, res.Pods, err = r.byOwner(ctx, "Job", nn, func(ctx context.Context, nn types.NamespacedName) (*metav1.LabelSelector, error) {
			j, err := r.jobs.Get(ctx, nn)
			if err != nil {
				return nil, err
			}
			return j.Spec.Selector, nil
		})
	case req.LabelSelector != "":
		// An unrecognized resource type falls through to here when a selector
		// was supplied; the type is ignored.
		log.Debug("Resolving pods by label selector", "labelSelector", req.LabelSelector)
		res.Pods, err = r.bySelector(ctx, res.Namespace, req.LabelSelector)
	default:
		return nil, toolerr.New(toolerr.UnsupportedResourceType, errUnsupportedType, req.ResourceType)
	}
	if err != nil {
		return nil, err
	}

	if len(res.Pods) == 0 {
		return nil, toolerr.New(toolerr.NoResourcesFound, errNoPods)
	}

	log.Debug("Resolved pods", "count", len(res.Pods), "labelSelector", res.LabelSelector)
	return res, nil
}

func (r *Resolver) byName(ctx context.Context, nn types.NamespacedName) ([]corev1.Pod, error) {
	p, err := r.pods.Get(ctx, nn)
	if kerrors.IsNotFound(err) {
		return nil, toolerr.New(toolerr.ResourceNotFound, errNotFound, "Pod", nn.Name, nn.Namespace)
	}
	if err != nil {
		return nil, toolerr.Classify(err, toolerr.UpstreamFailure)
	}
	return []corev1.Pod{*p}, nil
}

type selectorFn func(ctx context.Context, nn types.NamespacedName) (*metav1.LabelSelector, error)

// byOwner lists the pods selected by the pod selector of a deployment or job.
func (r *Resolver) byOwner(ctx context.Context, kind string, nn types.NamespacedName, get selectorFn) (string, []corev1.Pod, error) {
	ls, err := get(ctx, nn)
	if kerrors.IsNotFound(err) {
		return "", nil, toolerr.New(toolerr.ResourceNotFound, errNotFound, kind, nn.Name, nn.Namespace)
	}
	if err != nil {
		return "", nil, toolerr.Classify(err, toolerr.UpstreamFailure)
	}

	sel, err := resource.Selector(ls)
	if err != nil {
		return "", nil, toolerr.Wrap(err, toolerr.UpstreamFailure, fmt.Sprintf(errOwnerSelector, strings.ToLower(kind)))
	}
	if sel == "" {
		return "", nil, toolerr.New(toolerr.NoResourcesFound, errNoSelector, kind, nn.Name, nn.Namespace)
	}

	pods, err := r.bySelector(ctx, nn.Namespace, sel)
	return sel, pods, err
}

func (r *Resolver) bySelector(ctx context.Context, namespace, selector string) ([]corev1.Pod, error) {
	pods, err := r.pods.List(ctx, namespace, selector)
	if err != nil {
		return nil, toolerr.Classify(err, toolerr.UpstreamFailure)
	}
	return pods, nil
}
