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
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"

	"github.com/upbound/kube-readonly-mcp-server/internal/logs"
	"github.com/upbound/kube-readonly-mcp-server/internal/toolerr"
)

const (
	getPodLogs = "get_pod_logs"

	errPodNotFound = "Pod %s not found in namespace %s"
	errGetPodLogs  = "failed to get pod logs"
)

// podLogsResponse is returned by get_pod_logs.
type podLogsResponse struct {
	PodName   string `json:"podName"`
	Namespace string `json:"namespace"`
	*logs.PodLogs
}

// GetPodLogs creates a new mcp.Tool for retrieving pods logs from the matching
// pod details provided as parameters.
func GetPodLogs() mcp.Tool {
	return mcp.NewTool(getPodLogs,
		mcp.WithDescription(`
Read the logs of the given container of the given Kubernetes pod in the given namespace.
If no container is given the first container declared by the pod is read.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("The Kubernetes namespace of the pod"),
		),
		mcp.WithString("podName",
			mcp.Required(),
			mcp.Description("The name of the Kubernetes pod"),
		),
		mcp.WithString("container",
			mcp.Description("The name of the container of the pod whose logs are being read"),
		),
		mcp.WithNumber("tailLines",
			mcp.Description("Only return this many lines from the end of the log"),
		),
		mcp.WithBoolean("previous",
			mcp.Description("Read the logs of the previous, terminated instance of the container"),
		),
	)
}

// GetPodLogsHandler handles tool requests to retrieve pods logs.
func (s *Server) GetPodLogsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.log.WithValues("handler", getPodLogs)

	ns, err := requireString(req, "namespace")
	if err != nil {
		return errorResult(err), nil
	}

	name, err := requireString(req, "podName")
	if err != nil {
		return errorResult(err), nil
	}

	tail, err := optionalInt64(req, "tailLines")
	if err != nil {
		return errorResult(err), nil
	}

	o := logs.Options{
		Container: req.GetString("container", ""),
		TailLines: tail,
		Previous:  req.GetBool("previous", false),
	}

	log.Debug("received request", "scope", ns, "pod", name, "container", o.Container)

	p, err := s.pod.Get(ctx, types.NamespacedName{Namespace: ns, Name: name})
	if kerrors.IsNotFound(err) {
		return errorResult(toolerr.New(toolerr.ResourceNotFound, errPodNotFound, name, ns)), nil
	}
	if err != nil {
		return errorResult(err), nil
	}

	l, err := s.aggregator.Fetch(ctx, p, o)
	if err != nil {
		return errorResult(toolerr.Wrap(err, toolerr.UpstreamFailure, errGetPodLogs)), nil
	}

	return jsonResult(podLogsResponse{PodName: name, Namespace: ns, PodLogs: l}, false), nil
}
