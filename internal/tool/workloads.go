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
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/deployment"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/job"
)

const (
	listDeployments = "list_deployments"
	listJobs        = "list_jobs"
)

// ListDeployments creates a new mcp.Tool for listing deployments.
func ListDeployments() mcp.Tool {
	return mcp.NewTool(listDeployments,
		mcp.WithDescription(`
List the Kubernetes deployments in the given namespace, or in all namespaces if no namespace is given.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to list deployments in. Lists all namespaces if omitted."),
		),
		mcp.WithString("labelSelector",
			mcp.Description("Only list deployments matching this label selector"),
		),
	)
}

// ListDeploymentsHandler handles tool requests to list deployments.
func (s *Server) ListDeploymentsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")
	sel := req.GetString("labelSelector", "")

	log := s.log.WithValues("handler", listDeployments)
	log.Debug("received request", "scope", resource.Scope(ns), "labelSelector", sel)

	l, err := s.deployment.List(ctx, ns, sel)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(deployment.NewRecords(l), false), nil
}

// ListJobs creates a new mcp.Tool for listing jobs.
func ListJobs() mcp.Tool {
	return mcp.NewTool(listJobs,
		mcp.WithDescription(`
List the Kubernetes jobs in the given namespace, or in all namespaces if no namespace is given.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to list jobs in. Lists all namespaces if omitted."),
		),
		mcp.WithString("labelSelector",
			mcp.Description("Only list jobs matching this label selector"),
		),
	)
}

// ListJobsHandler handles tool requests to list jobs.
func (s *Server) ListJobsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")
	sel := req.GetString("labelSelector", "")

	log := s.log.WithValues("handler", listJobs)
	log.Debug("received request", "scope", resource.Scope(ns), "labelSelector", sel)

	l, err := s.job.List(ctx, ns, sel)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(job.NewRecords(l), false), nil
}
