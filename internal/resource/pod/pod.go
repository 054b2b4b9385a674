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
	"context"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const (
	errGetPod     = "failed to get pod"
	errListPods   = "failed to list pods"
	errOpenStream = "failed to read data from pod log stream"
	errReadStream = "failed to read pod log stream"
)

// Pod reads pods and their logs.
type Pod struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Pod.
type Option func(*Pod)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(p *Pod) {
		p.log = log
	}
}

// New constructs a new Pod.
func New(c cluster.Client, opts ...Option) *Pod {
	p := &Pod{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Get returns the named pod. Errors wrap the API error so that
// kerrors.IsNotFound still applies.
func (p *Pod) Get(ctx context.Context, nn types.NamespacedName) (*corev1.Pod, error) {
	pod, err := p.c.CoreV1().Pods(nn.Namespace).Get(ctx, nn.Name, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errGetPod)
	}
	return pod, nil
}

// List returns the pods in namespace matching selector, in the order the API
// server returned them. An empty namespace lists across all namespaces.
func (p *Pod) List(ctx context.Context, namespace, selector string) ([]corev1.Pod, error) {
	p.log.Debug("Listing pods", "scope", resource.Scope(namespace), "labelSelector", selector)

	l, err := p.c.CoreV1().Pods(namespace).List(ctx, resource.ListOptions(selector, ""))
	if err != nil {
		return nil, errors.Wrap(err, errListPods)
	}
	return l.Items, nil
}

// GetLogs returns the raw log text of the named pod.
func (p *Pod) GetLogs(ctx context.Context, nn types.NamespacedName, o *corev1.PodLogOptions) ([]byte, error) {
	if o == nil {
		o = &corev1.PodLogOptions{}
	}
	req := p.c.CoreV1().Pods(nn.Namespace).GetLogs(nn.Name, o)
	logs, err := req.Stream(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errOpenStream)
	}

	defer logs.Close() //nolint:errcheck // nothing useful to do with a close error on a read stream.

	buf, err := io.ReadAll(logs)
	if err != nil {
		return nil, errors.Wrap(err, errReadStream)
	}
	return buf, nil
}
