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
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/pod"
)

const listPods = "list_pods"

// ListPods creates a new mcp.Tool for listing pods in a namespace or across
// all namespaces.
func ListPods() mcp.Tool {
	return mcp.NewTool(listPods,
		mcp.WithDescription(`
List the Kubernetes pods in the given namespace, or in all namespaces if no namespace is given.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to list pods in. Lists all namespaces if omitted."),
		),
		mcp.WithString("labelSelector",
			mcp.Description("Only list pods matching this label selector, for example app=web"),
		),
	)
}

// ListPodsHandler handles tool requests to list pods.
func (s *Server) ListPodsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")
	sel := req.GetString("labelSelector", "")

	log := s.log.WithValues("handler", listPods)
	log.Debug("received request", "scope", resource.Scope(ns), "labelSelector", sel)

	pods, err := s.pod.List(ctx, ns, sel)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(pod.NewRecords(pods), false), nil
}
