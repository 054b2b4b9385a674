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

package ingress

import (
	"context"

	networkingv1 "k8s.io/api/networking/v1"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const errListIngresses = "failed to list ingresses"

// Ingress reads ingresses.
type Ingress struct {
	log logging.Logger
	c   cluster.Client
}

// Option modifies the underlying Ingress.
type Option func(*Ingress)

// WithLogger overrides the default no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(i *Ingress) {
		i.log = log
	}
}

// New constructs a new Ingress.
func New(c cluster.Client, opts ...Option) *Ingress {
	i := &Ingress{
		c:   c,
		log: logging.NewNopLogger(),
	}

	for _, o := range opts {
		o(i)
	}

	return i
}

// List returns the ingresses in namespace, or in all namespaces if it is
// empty.
func (i *Ingress) List(ctx context.Context, namespace string) ([]networkingv1.Ingress, error) {
	i.log.Debug("Listing ingresses", "scope", resource.Scope(namespace))

	l, err := i.c.NetworkingV1().Ingresses(namespace).List(ctx, resource.ListOptions("", ""))
	if err != nil {
		return nil, errors.Wrap(err, errListIngresses)
	}
	return l.Items, nil
}

// BackendRecord is the service a path routes to. Resource backends have no
// service and are reported with a nil BackendRecord.
type BackendRecord struct {
	Service  string  `json:"service"`
	PortName *string `json:"portName"`
	Port     *int32  `json:"port"`
}

// PathRecord is one HTTP path of a rule.
type PathRecord struct {
	Path     *string        `json:"path"`
	PathType *string        `json:"pathType"`
	Backend  *BackendRecord `json:"backend"`
}

// RuleRecord is one host rule.
type RuleRecord struct {
	Host  *string      `json:"host"`
	Paths []PathRecord `json:"paths"`
}

// Record is the flattened view of an ingress.
type Record struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	IngressClassName  *string           `json:"ingressClassName"`
	Hosts             []string          `json:"hosts"`
	TLSHosts          []string          `json:"tlsHosts"`
	Rules             []RuleRecord      `json:"rules"`
	Addresses         []string          `json:"addresses"`
	Labels            map[string]string `json:"labels"`
	CreationTimestamp *string           `json:"creationTimestamp"`
}

// NewRecord projects an ingress into a Record.
func NewRecord(in *networkingv1.Ingress) Record {
	r := Record{
		Name:              in.GetName(),
		Namespace:         in.GetNamespace(),
		IngressClassName:  in.Spec.IngressClassName,
		Hosts:             make([]string, 0, len(in.Spec.Rules)),
		TLSHosts:          make([]string, 0),
		Rules:             make([]RuleRecord, 0, len(in.Spec.Rules)),
		Addresses:         make([]string, 0, len(in.Status.LoadBalancer.Ingress)),
		Labels:            in.GetLabels(),
		CreationTimestamp: resource.Timestamp(in.GetCreationTimestamp()),
	}

	for _, rule := range in.Spec.Rules {
		if rule.Host != "" {
			r.Hosts = append(r.Hosts, rule.Host)
		}
		rr := RuleRecord{Host: resource.Optional(rule.Host), Paths: make([]PathRecord, 0)}
		if rule.HTTP != nil {
			for _, p := range rule.HTTP.Paths {
				rr.Paths = append(rr.Paths, newPathRecord(p))
			}
		}
		r.Rules = append(r.Rules, rr)
	}

	for _, tls := range in.Spec.TLS {
		r.TLSHosts = append(r.TLSHosts, tls.Hosts...)
	}

	for _, lb := range in.Status.LoadBalancer.Ingress {
		switch {
		case lb.IP != "":
			r.Addresses = append(r.Addresses, lb.IP)
		case lb.Hostname != "":
			r.Addresses = append(r.Addresses, lb.Hostname)
		}
	}

	return r
}

func newPathRecord(p networkingv1.HTTPIngressPath) PathRecord {
	pr := PathRecord{Path: resource.Optional(p.Path)}
	if p.PathType != nil {
		pr.PathType = resource.Optional(string(*p.PathType))
	}
	if svc := p.Backend.Service; svc != nil {
		b := &BackendRecord{Service: svc.Name, PortName: resource.Optional(svc.Port.Name)}
		if svc.Port.Number != 0 {
			n := svc.Port.Number
			b.Port = &n
		}
		pr.Backend = b
	}
	return pr
}

// NewRecords projects every ingress in l.
func NewRecords(l []networkingv1.Ingress) []Record {
	out := make([]Record, 0, len(l))
	for i := range l {
		out = append(out, NewRecord(&l[i]))
	}
	return out
}
