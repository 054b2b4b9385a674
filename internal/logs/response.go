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

package logs

import (
	"github.com/upbound/kube-readonly-mcp-server/internal/resource"
)

// Response is the aggregate answer to a Request.
type Response struct {
	ResourceType  string   `json:"resourceType"`
	Name          *string  `json:"name"`
	Namespace     *string  `json:"namespace"`
	LabelSelector *string  `json:"labelSelector"`
	Results       []Result `json:"results"`
}

// NewResponse assembles the Response for req from its resolution and the
// per-pod results.
func NewResponse(req Request, res *Resolution, results []Result) Response {
	if results == nil {
		results = []Result{}
	}
	return Response{
		ResourceType:  req.ResourceType,
		Name:          resource.Optional(req.Name),
		Namespace:     resource.Optional(res.Namespace),
		LabelSelector: resource.Optional(res.LabelSelector),
		Results:       results,
	}
}
