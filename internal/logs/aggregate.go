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

package logs

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/metrics"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/pod"
)

// DefaultConcurrency is the number of pods whose logs are fetched at once.
const DefaultConcurrency = 4

// A Fetcher reads the raw logs of a pod.
type Fetcher interface {
	GetLogs(ctx context.Context, nn types.NamespacedName, o *corev1.PodLogOptions) ([]byte, error)
}

// A FetcherFn is a function that satisfies Fetcher.
type FetcherFn func(ctx context.Context, nn types.NamespacedName, o *corev1.PodLogOptions) ([]byte, error)

// GetLogs calls fn.
func (fn FetcherFn) GetLogs(ctx context.Context, nn types.NamespacedName, o *corev1.PodLogOptions) ([]byte, error) {
	return fn(ctx, nn, o)
}

// Options control what is fetched from every pod.
type Options struct {
	// Container to read. Empty selects one per pod, see SelectContainer.
	Container string

	TailLines    *int64
	SinceSeconds *int64
	Timestamps   bool
	Previous     bool
}

// PodLogs are the logs fetched from one pod.
type PodLogs struct {
	Container      *string  `json:"container"`
	Logs           []string `json:"logs"`
	ContainerNames []string `json:"containerNames"`
	Status         *string  `json:"status"`
}

// A Result is the outcome for one pod: either PodLogs or Error is set.
type Result struct {
	PodName   string `json:"podName"`
	Namespace string `json:"namespace"`
	*PodLogs
	Error string `json:"error,omitempty"`
}

// Aggregator fetches logs from many pods, isolating per-pod failures.
type Aggregator struct {
	log     logging.Logger
	f       Fetcher
	workers int
	m       *metrics.Metrics
}

// AggregatorOption modifies the underlying Aggregator.
type AggregatorOption func(*Aggregator)

// WithAggregatorLogger overrides the default no-op logger.
func WithAggregatorLogger(log logging.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.log = log
	}
}

// WithConcurrency bounds the number of concurrent log fetches. Values below
// one fetch sequentially.
func WithConcurrency(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// WithMetrics records the outcome of every fetch.
func WithMetrics(m *metrics.Metrics) AggregatorOption {
	return func(a *Aggregator) {
		a.m = m
	}
}

// NewAggregator constructs a new Aggregator reading logs through f.
func NewAggregator(f Fetcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		log:     logging.NewNopLogger(),
		f:       f,
		workers: DefaultConcurrency,
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

var _ Fetcher = &pod.Pod{}

// Aggregate fetches the logs of every pod. The result has one entry per pod in
// the same order as pods. A pod whose logs cannot be fetched gets an entry
// with Error set; the remaining pods are unaffected.
func (a *Aggregator) Aggregate(ctx context.Context, pods []corev1.Pod, o Options) []Result {
	results := make([]Result, len(pods))

	g := &errgroup.Group{}
	g.SetLimit(a.workers)
	for i := range pods {
		g.Go(func() error {
			results[i] = a.result(ctx, &pods[i], o)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Aggregator) result(ctx context.Context, p *corev1.Pod, o Options) Result {
	r := Result{PodName: p.GetName(), Namespace: p.GetNamespace()}

	l, err := a.Fetch(ctx, p, o)
	if err != nil {
		a.log.Info("Cannot fetch pod logs", "pod", r.PodName, "namespace", r.Namespace, "error", err)
		r.Error = err.Error()
		return r
	}
	r.PodLogs = l
	return r
}

// Fetch returns the logs of a single pod.
func (a *Aggregator) Fetch(ctx context.Context, p *corev1.Pod, o Options) (*PodLogs, error) {
	names := pod.ContainerNames(p)
	container := SelectContainer(o.Container, names)

	plo := &corev1.PodLogOptions{
		TailLines:    o.TailLines,
		SinceSeconds: o.SinceSeconds,
		Timestamps:   o.Timestamps,
		Previous:     o.Previous,
	}
	if container != nil {
		plo.Container = *container
	}

	raw, err := a.f.GetLogs(ctx, types.NamespacedName{Namespace: p.GetNamespace(), Name: p.GetName()}, plo)
	a.m.ObserveLogFetch(err)
	if err != nil {
		return nil, err
	}

	return &PodLogs{
		Container:      container,
		Logs:           SplitLines(string(raw)),
		ContainerNames: names,
		Status:         pod.Phase(p),
	}, nil
}

// SelectContainer returns explicit if set. Otherwise it returns the first
// declared container, or nil if the pod declares none. An explicit name is
// not checked against the pod.
func SelectContainer(explicit string, declared []string) *string {
	if explicit != "" {
		return &explicit
	}
	if len(declared) == 0 {
		return nil
	}
	first := declared[0]
	return &first
}

// SplitLines splits raw on newlines. A trailing newline yields a trailing
// empty line.
func SplitLines(raw string) []string {
	return strings.Split(raw, "\n")
}
