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
	"github.com/upbound/kube-readonly-mcp-server/internal/resource/event"
)

const getEvents = "get_events"

// eventsResponse is returned by get_events. It echoes the query so callers
// can tell an empty scope from an empty result.
type eventsResponse struct {
	Namespace     *string        `json:"namespace"`
	FieldSelector *string        `json:"fieldSelector"`
	Events        []event.Record `json:"events"`
}

// GetEvents creates a new mcp.Tool for reading events, optionally narrowed
// by a field selector.
func GetEvents() mcp.Tool {
	return mcp.NewTool(getEvents,
		mcp.WithDescription(`
Read the Kubernetes events in the given namespace, or in all namespaces if no namespace is given.
Use a field selector such as involvedObject.name=my-pod to narrow the events to one object.
`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("namespace",
			mcp.Description("The Kubernetes namespace to read events from. Reads all namespaces if omitted."),
		),
		mcp.WithString("fieldSelector",
			mcp.Description("Only return events matching this field selector, for example involvedObject.kind=Pod"),
		),
	)
}

// GetEventsHandler handles tool requests to read events.
func (s *Server) GetEventsHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ns := req.GetString("namespace", "")
	fs := req.GetString("fieldSelector", "")

	log := s.log.WithValues("handler", getEvents)
	log.Debug("received request", "scope", resource.Scope(ns), "fieldSelector", fs)

	l, err := s.event.List(ctx, ns, fs)
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(eventsResponse{
		Namespace:     resource.Optional(ns),
		FieldSelector: resource.Optional(fs),
		Events:        event.NewRecords(l),
	}, false), nil
}
