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

package job

import (
	"context"

	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const (
	errGetJob   = "failed to get job"
	errListJobs = "failed to list jobs"
)

// Job reads batch jobs.
type Job struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Job.
type Option func(*Job)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(j *Job) {
		j.log = log
	}
}

// New constructs a new Job.
func New(c cluster.Client, opts ...Option) *Job {
	j := &Job{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(j)
	}

	return j
}

// Get returns the named job.
func (j *Job) Get(ctx context.Context, nn types.NamespacedName) (*batchv1.Job, error) {
	job, err := j.c.BatchV1().Jobs(nn.Namespace).Get(ctx, nn.Name, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errGetJob)
	}
	return job, nil
}

// List returns the jobs in namespace, or in all namespaces if it is empty.
func (j *Job) List(ctx context.Context, namespace, selector string) ([]batchv1.Job, error) {
	j.log.Debug("Listing jobs", "scope", resource.Scope(namespace))

	l, err := j.c.BatchV1().Jobs(namespace).List(ctx, resource.ListOptions(selector, ""))
	if err != nil {
		return nil, errors.Wrap(err, errListJobs)
	}
	return l.Items, nil
}

// Record is the flattened view of a job.
type Record struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Completions       *int32            `json:"completions"`
	Parallelism       *int32            `json:"parallelism"`
	Active            int32             `json:"active"`
	Succeeded         int32             `json:"succeeded"`
	Failed            int32             `json:"failed"`
	StartTime         *string           `json:"startTime"`
	CompletionTime    *string           `json:"completionTime"`
	Labels            map[string]string `json:"labels"`
	CreationTimestamp *string           `json:"creationTimestamp"`
	Selector          map[string]string `json:"selector"`
}

// NewRecord projects a job into a Record.
func NewRecord(j *batchv1.Job) Record {
	r := Record{
		Name:              j.GetName(),
		Namespace:         j.GetNamespace(),
		Completions:       j.Spec.Completions,
		Parallelism:       j.Spec.Parallelism,
		Active:            j.Status.Active,
		Succeeded:         j.Status.Succeeded,
		Failed:            j.Status.Failed,
		StartTime:         resource.TimestampPtr(j.Status.StartTime),
		CompletionTime:    resource.TimestampPtr(j.Status.CompletionTime),
		Labels:            j.GetLabels(),
		CreationTimestamp: resource.Timestamp(j.GetCreationTimestamp()),
	}
	if j.Spec.Selector != nil {
		r.Selector = j.Spec.Selector.MatchLabels
	}
	return r
}

// NewRecords projects every job in l.
func NewRecords(l []batchv1.Job) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
