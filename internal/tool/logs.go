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

	"github.com/upbound/kube-readonly-mcp-server/internal/logs"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

const getLogs = "get_logs"

// GetLogs creates a new mcp.Tool for reading the logs of every pod that
// belongs to a pod, deployment or job, or that matches a label selector.
func GetLogs() mcp.Tool {
	return mcp.NewTool(getLogs,
		mcp.WithDescription(`
Read the logs of every pod that belongs to the given Kubernetes resource, or that matches the given label selector.
A resource is identified by resourceType and name. Supported resource types are pod, deployment and job.
Failures to read the logs of a single pod are reported in that pod's result and do not fail the whole request.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("resourceType",
			mcp.Required(),
			mcp.Description("The type of the resource: pod, deployment or job"),
		),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace of the resource. Defaults to default when a name is given, otherwise all namespaces are searched."),
		),
		mcp.WithString("name",
			mcp.Description("The name of the resource"),
		),
		mcp.WithString("labelSelector",
			mcp.Description("A label selector matching the pods to read, for example app=web. Used when no name is given."),
		),
		mcp.WithString("container",
			mcp.Description("The container to read in every pod. Defaults to the first container declared by each pod."),
		),
		mcp.WithNumber("tail",
			mcp.Description("Only return this many lines from the end of each log"),
		),
		mcp.WithNumber("sinceSeconds",
			mcp.Description("Only return log lines newer than this many seconds"),
		),
		mcp.WithBoolean("timestamps",
			mcp.Description("Prefix every log line with its timestamp"),
		),
		mcp.WithBoolean("pretty",
			mcp.Description("Indent the JSON response"),
		),
	)
}

// GetLogsHandler handles tool requests to read the logs of many pods.
func (s *Server) GetLogsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.log.WithValues("handler", getLogs)

	rt, err := requireString(req, "resourceType")
	if err != nil {
		return errorResult(err), nil
	}

	tail, err := optionalInt64(req, "tail")
	if err != nil {
		return errorResult(err), nil
	}

	since, err := optionalInt64(req, "sinceSeconds")
	if err != nil {
		return errorResult(err), nil
	}

	r := logs.Request{
		ResourceType:  rt,
		Namespace:     req.GetString("namespace", ""),
		Name:          req.GetString("name", ""),
		LabelSelector: req.GetString("labelSelector", ""),
	}
	o := logs.Options{
		Container:    req.GetString("container", ""),
		TailLines:    tail,
		SinceSeconds: since,
		Timestamps:   req.GetBool("timestamps", false),
	}

	log.Debug("received request",
		"resourceType", r.ResourceType,
		"name", r.Name,
		"scope", resource.Scope(r.Namespace),
		"labelSelector", r.LabelSelector,
	)

	res, err := s.resolver.Resolve(ctx, r)
	if err != nil {
		log.Debug("cannot resolve pods", "error", err)
		return errorResult(err), nil
	}

	results := s.aggregator.Aggregate(ctx, res.Pods, o)
	return jsonResult(logs.NewResponse(r, res, results), req.GetBool("pretty", false)), nil
}
