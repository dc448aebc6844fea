// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemini2026/runn-mcp-server/internal/runn"
	"github.com/gemini2026/runn-mcp-server/internal/toolkit"
)

func (s *Service) registerPassthroughTool(rt *toolkit.Runtime) {
	toolkit.AddTool(rt, &mcp.Tool{
		Name: "runn_request",
		Description: "Perform an arbitrary request against the Runn API. Escape hatch: " +
			"any method and path are forwarded as-is, so POST/PATCH/PUT/DELETE can " +
			"mutate upstream state. Set paginate=true on GET list endpoints to " +
			"collect all pages.",
		Annotations: &mcp.ToolAnnotations{
			// The dispatcher cannot know the target endpoint's semantics,
			// so no read-only or non-destructive hints are claimed.
			OpenWorldHint: boolPtr(true),
		},
	}, s.passthrough)
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPatch:  true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

type passthroughInput struct {
	Method   string            `json:"method" jsonschema:"HTTP method: GET, POST, PATCH, PUT, or DELETE"`
	Path     string            `json:"path" jsonschema:"upstream-relative path, e.g. /projects"`
	Query    map[string]string `json:"query,omitempty" jsonschema:"query parameters"`
	Body     map[string]any    `json:"body,omitempty" jsonschema:"JSON request body"`
	Paginate bool              `json:"paginate,omitempty" jsonschema:"on GET, follow pagination cursors and return all records"`
}

type passthroughOutput struct {
	Status int           `json:"status,omitempty"`
	Body   any           `json:"body,omitempty"`
	Items  []runn.Record `json:"items,omitempty"`
	Count  int           `json:"count,omitempty"`
}

// passthrough validates only method and path; everything else is
// forwarded untouched.
func (s *Service) passthrough(ctx context.Context, _ *mcp.CallToolRequest, in passthroughInput) (*mcp.CallToolResult, passthroughOutput, error) {
	if in.Method == "" {
		return nil, passthroughOutput{}, toolkit.MissingArgument("method")
	}
	if in.Path == "" {
		return nil, passthroughOutput{}, toolkit.MissingArgument("path")
	}

	method := strings.ToUpper(in.Method)
	if !allowedMethods[method] {
		return nil, passthroughOutput{}, toolkit.InvalidArgument("method", fmt.Errorf("unsupported method %q", in.Method))
	}
	if in.Paginate && method != http.MethodGet {
		return nil, passthroughOutput{}, toolkit.InvalidArgument("paginate", fmt.Errorf("pagination only applies to GET"))
	}

	// The escape hatch bypasses per-endpoint validation; every use is
	// logged loudly so mutations stand out in the audit trail.
	s.logger.Warn("generic passthrough invocation", "method", method, "path", in.Path, "paginate", in.Paginate)

	query := url.Values{}
	for k, v := range in.Query {
		query.Set(k, v)
	}

	if in.Paginate {
		items, err := s.client.ListAll(ctx, in.Path, query)
		if err != nil {
			return nil, passthroughOutput{}, err
		}
		return nil, passthroughOutput{Items: items, Count: len(items)}, nil
	}

	var body any
	if in.Body != nil {
		body = in.Body
	}
	status, raw, err := s.client.Request(ctx, method, in.Path, query, body)
	if err != nil {
		return nil, passthroughOutput{}, err
	}

	var decoded any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = string(raw)
		}
	}
	return nil, passthroughOutput{Status: status, Body: decoded}, nil
}
