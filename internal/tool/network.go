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

package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/ingress"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/service"
)

const (
	listServices  = "list_services"
	listIngresses = "list_ingresses"
)

// ListServices creates a new mcp.Tool for listing services.
func ListServices() mcp.Tool {
	return mcp.NewTool(listServices,
		mcp.WithDescription(`
List the Kubernetes services in the given namespace, or in all namespaces if no namespace is given.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to list services in. Lists all namespaces if omitted."),
		),
	)
}

// ListServicesHandler handles tool requests to list services.
func (s *Server) ListServicesHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")

	log := s.log.WithValues("handler", listServices)
	log.Debug("received request", "scope", resource.Scope(ns))

	l, err := s.service.List(ctx, ns)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(service.NewRecords(l), false), nil
}

// ListIngresses creates a new mcp.Tool for listing ingresses.
func ListIngresses() mcp.Tool {
	return mcp.NewTool(listIngresses,
		mcp.WithDescription(`
List the Kubernetes ingresses in the given namespace, or in all namespaces if no namespace is given.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to list ingresses in. Lists all namespaces if omitted."),
		),
	)
}

// ListIngressesHandler handles tool requests to list ingresses.
func (s *Server) ListIngressesHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")

	log := s.log.WithValues("handler", listIngresses)
	log.Debug("received request", "scope", resource.Scope(ns))

	l, err := s.ingress.List(ctx, ns)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(ingress.NewRecords(l), false), nil
}
