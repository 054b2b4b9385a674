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
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/upbound/kube-readonly-mcp-server/internal/toolerr"
)

const (
	errMarshal     = "failed to serialize result"
	errNegativeArg = "%s must not be negative"
	errNotInteger  = "%s must be a whole number"
)

// errorBody is the document returned by every failed tool call.
type errorBody struct {
	Error  string         `json:"error"`
	Reason toolerr.Reason `json:"reason,omitempty"`
}

// errorResult renders err as a JSON error document.
func errorResult(err error) *mcp.CallToolResult {
	b, mErr := json.Marshal(errorBody{Error: err.Error(), Reason: toolerr.ReasonFor(err)})
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(b))
}

// jsonResult renders v as a JSON document, indented by two spaces if pretty
// is set.
func jsonResult(v any, pretty bool) *mcp.CallToolResult {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return errorResult(toolerr.Wrap(err, toolerr.UpstreamFailure, errMarshal))
	}
	return mcp.NewToolResultText(string(b))
}

// requireString returns the named argument, classifying a missing argument
// as invalid.
func requireString(req mcp.CallToolRequest, key string) (string, error) {
	v, err := req.RequireString(key)
	if err != nil {
		return "", toolerr.New(toolerr.InvalidArgument, "%s", err.Error())
	}
	return v, nil
}

// optionalInt64 returns the named argument, or nil if the caller did not
// supply it or supplied null. Whole numbers and numeric strings are accepted.
func optionalInt64(req mcp.CallToolRequest, key string) (*int64, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var v int64
	switch n := raw.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return nil, toolerr.New(toolerr.InvalidArgument, errNotInteger, key)
		}
		v = int64(n)
	case int:
		v = int64(n)
	case int64:
		v = n
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, toolerr.New(toolerr.InvalidArgument, errNotInteger, key)
		}
		v = i
	default:
		return nil, toolerr.New(toolerr.InvalidArgument, errNotInteger, key)
	}

	if v < 0 {
		return nil, toolerr.New(toolerr.InvalidArgument, errNegativeArg, key)
	}
	return &v, nil
}
