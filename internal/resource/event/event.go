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

package event

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const errListEvents = "failed to list events"

// Event reads events.
type Event struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Event.
type Option func(*Event)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(e *Event) {
		e.log = log
	}
}

// New constructs a new Event.
func New(c cluster.Client, opts ...Option) *Event {
	e := &Event{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// List returns the events in namespace, or in all namespaces if it is empty,
// filtered by fieldSelector (for example involvedObject.name=my-pod).
func (e *Event) List(ctx context.Context, namespace, fieldSelector string) ([]corev1.Event, error) {
	e.log.Debug("Listing events", "scope", resource.Scope(namespace), "fieldSelector", fieldSelector)

	l, err := e.c.CoreV1().Events(namespace).List(ctx, resource.ListOptions("", fieldSelector))
	if err != nil {
		return nil, errors.Wrap(err, errListEvents)
	}
	return l.Items, nil
}

// ObjectRecord references the object an event is about.
type ObjectRecord struct {
	Kind      *string `json:"kind"`
	Name      *string `json:"name"`
	Namespace *string `json:"namespace"`
}

// SourceRecord is the component that reported an event.
type SourceRecord struct {
	Component *string `json:"component"`
	Host      *string `json:"host"`
}

// Record is the flattened view of an event.
type Record struct {
	Type           *string      `json:"type"`
	Reason         *string      `json:"reason"`
	Message        *string      `json:"message"`
	Count          *int32       `json:"count"`
	FirstTimestamp *string      `json:"firstTimestamp"`
	LastTimestamp  *string      `json:"lastTimestamp"`
	InvolvedObject ObjectRecord `json:"involvedObject"`
	Source         SourceRecord `json:"source"`
}

// NewRecord projects an event into a Record.
func NewRecord(e *corev1.Event) Record {
	return Record{
		Type:           resource.Optional(e.Type),
		Reason:         resource.Optional(e.Reason),
		Message:        resource.Optional(e.Message),
		Count:          count(e.Count),
		FirstTimestamp: resource.Timestamp(e.FirstTimestamp),
		LastTimestamp:  resource.Timestamp(e.LastTimestamp),
		InvolvedObject: ObjectRecord{
			Kind:      resource.Optional(e.InvolvedObject.Kind),
			Name:      resource.Optional(e.InvolvedObject.Name),
			Namespace: resource.Optional(e.InvolvedObject.Namespace),
		},
		Source: SourceRecord{
			Component: resource.Optional(e.Source.Component),
			Host:      resource.Optional(e.Source.Host),
		},
	}
}

// count returns nil for an unset count. Events recorded through
// events.k8s.io/v1 report a series instead and leave count at zero.
func count(c int32) *int32 {
	if c == 0 {
		return nil
	}
	return &c
}

// NewRecords projects every event in l.
func NewRecords(l []corev1.Event) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
