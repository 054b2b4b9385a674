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
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/namespace"
)

const listNamespaces = "list_namespaces"

// ListNamespaces creates a new mcp.Tool for listing namespaces.
func ListNamespaces() mcp.Tool {
	return mcp.NewTool(listNamespaces,
		mcp.WithDescription(`
List the Kubernetes namespaces in the cluster.
`),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// ListNamespacesHandler handles tool requests to list namespaces.
func (s *Server) ListNamespacesHandler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.log.WithValues("handler", listNamespaces)
	log.Debug("received request", "scope", resource.AllNamespaces)

	l, err := s.namespace.List(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(namespace.NewRecords(l), false), nil
}
