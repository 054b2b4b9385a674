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

package service

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const errListServices = "failed to list services"

// Service reads services.
type Service struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Service.
type Option func(*Service)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New constructs a new Service.
func New(c cluster.Client, opts ...Option) *Service {
	s := &Service{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// List returns the services in namespace, or in all namespaces if it is empty.
func (s *Service) List(ctx context.Context, namespace string) ([]corev1.Service, error) {
	s.log.Debug("Listing services", "scope", resource.Scope(namespace))

	l, err := s.c.CoreV1().Services(namespace).List(ctx, resource.ListOptions("", ""))
	if err != nil {
		return nil, errors.Wrap(err, errListServices)
	}
	return l.Items, nil
}

// PortRecord is one exposed service port. NodePort is only present for
// NodePort and LoadBalancer services.
type PortRecord struct {
	Name       *string             `json:"name"`
	Port       int32               `json:"port"`
	TargetPort *intstr.IntOrString `json:"targetPort"`
	Protocol   *string             `json:"protocol"`
	NodePort   *int32              `json:"nodePort,omitempty"`
}

// Record is the flattened view of a service.
type Record struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Type              *string           `json:"type"`
	ClusterIP         *string           `json:"clusterIP"`
	ExternalIPs       []string          `json:"externalIPs"`
	Ports             []PortRecord      `json:"ports"`
	Selector          map[string]string `json:"selector"`
	CreationTimestamp *string           `json:"creationTimestamp"`
}

// NewRecord projects a service into a Record.
func NewRecord(s *corev1.Service) Record {
	ports := make([]PortRecord, 0, len(s.Spec.Ports))
	for _, p := range s.Spec.Ports {
		pr := PortRecord{
			Name:     resource.Optional(p.Name),
			Port:     p.Port,
			Protocol: resource.Optional(string(p.Protocol)),
		}
		if p.TargetPort != (intstr.IntOrString{}) {
			pr.TargetPort = ptr.To(p.TargetPort)
		}
		if p.NodePort != 0 {
			pr.NodePort = ptr.To(p.NodePort)
		}
		ports = append(ports, pr)
	}

	return Record{
		Name:              s.GetName(),
		Namespace:         s.GetNamespace(),
		Type:              resource.Optional(string(s.Spec.Type)),
		ClusterIP:         resource.Optional(s.Spec.ClusterIP),
		ExternalIPs:       s.Spec.ExternalIPs,
		Ports:             ports,
		Selector:          s.Spec.Selector,
		CreationTimestamp: resource.Timestamp(s.GetCreationTimestamp()),
	}
}

// NewRecords projects every service in l.
func NewRecords(l []corev1.Service) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
