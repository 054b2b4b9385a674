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

// Package tool exposes read-only cluster queries as MCP tools.
package tool

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
	"github.com/upbound/kube-readonly-mcp-server/internal/logs"
	"github.com/upbound/kube-readonly-mcp-server/internal/metrics"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/deployment"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/event"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/ingress"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/job"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/namespace"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/pod"
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/service"
)

// Server is a simple server for handling various tooling requests.
type Server struct {
	log logging.Logger
	m   *metrics.Metrics

	concurrency int
	fetcher     logs.Fetcher

	pod        *pod.Pod
	deployment *deployment.Deployment
	job        *job.Job
	service    *service.Service
	ingress    *ingress.Ingress
	namespace  *namespace.Namespace
	event      *event.Event
	resolver   *logs.Resolver
	aggregator *logs.Aggregator
}

// Option modifies the underlying Server.
type Option func(*Server)

// WithLogging overrides the underlying Server.
func WithLogging(log logging.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics records every tool call and log fetch in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.m = m
	}
}

// WithConcurrency bounds the number of pods whose logs are fetched at once by
// get_logs.
func WithConcurrency(n int) Option {
	return func(s *Server) {
		s.concurrency = n
	}
}

// WithLogFetcher overrides how pod logs are read. By default they are read
// from the cluster.
func WithLogFetcher(f logs.Fetcher) Option {
	return func(s *Server) {
		s.fetcher = f
	}
}

// NewServer constructs a new Server.
func NewServer(c cluster.Client, opts ...Option) *Server {
	s := &Server{
		log:         logging.NewNopLogger(),
		concurrency: logs.DefaultConcurrency,
	}

	for _, o := range opts {
		o(s)
	}

	s.pod = pod.New(c, pod.WithLogger(s.log))
	s.deployment = deployment.New(c, deployment.WithLogger(s.log))
	s.job = job.New(c, job.WithLogger(s.log))
	s.service = service.New(c, service.WithLogger(s.log))
	s.ingress = ingress.New(c, ingress.WithLogger(s.log))
	s.namespace = namespace.New(c, namespace.WithLogger(s.log))
	s.event = event.New(c, event.WithLogger(s.log))
	s.resolver = logs.NewResolver(c, logs.WithResolverLogger(s.log))

	if s.fetcher == nil {
		s.fetcher = s.pod
	}
	s.aggregator = logs.NewAggregator(s.fetcher,
		logs.WithAggregatorLogger(s.log),
		logs.WithConcurrency(s.concurrency),
		logs.WithMetrics(s.m),
	)

	return s
}

// Tools returns every tool the Server handles, ready to be added to an MCP
// server.
func (s *Server) Tools() []server.ServerTool {
	tools := []server.ServerTool{
		{Tool: ListPods(), Handler: s.ListPodsHandler},
		{Tool: ListDeployments(), Handler: s.ListDeploymentsHandler},
		{Tool: ListJobs(), Handler: s.ListJobsHandler},
		{Tool: ListServices(), Handler: s.ListServicesHandler},
		{Tool: ListIngresses(), Handler: s.ListIngressesHandler},
		{Tool: ListNamespaces(), Handler: s.ListNamespacesHandler},
		{Tool: GetEvents(), Handler: s.GetEventsHandler},
		{Tool: GetPodLogs(), Handler: s.GetPodLogsHandler},
		{Tool: GetLogs(), Handler: s.GetLogsHandler},
	}

	for i := range tools {
		tools[i].Handler = s.instrument(tools[i].Tool.Name, tools[i].Handler)
	}
	return tools
}

// instrument records the outcome and duration of every call to h.
func (s *Server) instrument(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := h(ctx, req)
		s.m.ObserveToolCall(name, err != nil || (res != nil && res.IsError), time.Since(start))
		return res, err
	}
}
