// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package toolkit is the tool dispatcher for the Runn MCP server. It wraps
// an MCP server with a parallel tool registry so invocations can be
// dispatched either over an MCP transport or directly in-process, which
// keeps the catalog testable without mocking transports.
//
// Dispatch is a linear flow per invocation: resolve the tool, decode and
// validate arguments, run the handler, shape the result. There is no state
// shared between invocations.
package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Validation failure taxonomy. All three are surfaced before any upstream
// call is made.
var (
	// ErrUnknownTool is returned when dispatching a tool name that is not
	// in the registry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMissingArgument is the base error for a required argument that
	// was not supplied.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidArgument is the base error for an argument with the wrong
	// type or shape, such as a date that does not parse.
	ErrInvalidArgument = errors.New("invalid argument")
)

// MissingArgument wraps ErrMissingArgument with the argument name.
func MissingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

// InvalidArgument wraps ErrInvalidArgument with the argument name and the
// underlying cause.
func InvalidArgument(name string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, name, cause)
}

// Runtime wraps an mcp.Server and keeps a parallel registry of tool
// handlers for direct in-process dispatch.
type Runtime struct {
	server *mcp.Server
	impl   *mcp.Implementation
	logger *slog.Logger

	// mu protects the registry; tools are registered during startup but
	// the transport may dispatch invocations concurrently.
	mu    sync.RWMutex
	tools map[string]toolEntry
}

type toolEntry struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// Options configures a Runtime.
type Options struct {
	// Logger for dispatch activity. If nil, slog.Default is used.
	Logger *slog.Logger

	// ServerOptions are passed directly to the underlying mcp.Server.
	ServerOptions *mcp.ServerOptions
}

// New creates a Runtime reporting the given implementation identity to MCP
// clients.
func New(impl *mcp.Implementation, opts *Options) *Runtime {
	if impl == nil {
		panic("toolkit: nil Implementation")
	}
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runtime{
		server: mcp.NewServer(impl, opts.ServerOptions),
		impl:   impl,
		logger: logger,
		tools:  make(map[string]toolEntry),
	}
}

// MCPServer returns the underlying mcp.Server for direct transport wiring.
func (r *Runtime) MCPServer() *mcp.Server {
	return r.server
}

// AddTool registers a typed tool on both the MCP server (with inferred
// input/output schemas) and the in-process registry.
func AddTool[In, Out any](r *Runtime, t *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(r.server, t, h)

	r.mu.Lock()
	r.tools[t.Name] = toolEntry{tool: t, handler: wrapTypedHandler(h)}
	r.mu.Unlock()
}

// wrapTypedHandler adapts a typed handler to the low-level shape used for
// in-process dispatch, mirroring the wrapping mcp.AddTool performs on the
// server side: handler errors become IsError results, outputs become
// structured content plus a JSON text rendering.
func wrapTypedHandler[In, Out any](h mcp.ToolHandlerFor[In, Out]) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input In
		if req.Params.Arguments != nil {
			if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
				return nil, InvalidArgument("arguments", err)
			}
		}

		result, output, err := h(ctx, req, input)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}
		if result == nil {
			result = &mcp.CallToolResult{}
		}

		data, err := json.Marshal(output)
		if err != nil {
			return nil, fmt.Errorf("toolkit: marshaling tool output: %w", err)
		}
		result.StructuredContent = json.RawMessage(data)
		if result.Content == nil {
			result.Content = []mcp.Content{&mcp.TextContent{Text: string(data)}}
		}
		return result, nil
	}
}

// CallTool dispatches an invocation in-process, bypassing the MCP
// transport layer. An unknown tool name fails with ErrUnknownTool before
// anything else runs.
func (r *Runtime) CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error) {
	r.mu.RLock()
	entry, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	var rawArgs json.RawMessage
	if args != nil {
		var err error
		rawArgs, err = json.Marshal(args)
		if err != nil {
			return nil, InvalidArgument("arguments", err)
		}
	}

	id := uuid.NewString()
	start := time.Now()
	r.logger.Debug("dispatching tool", "invocation", id, "tool", name)

	result, err := entry.handler(ctx, &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: rawArgs,
		},
	})
	if err != nil {
		r.logger.Error("tool dispatch failed", "invocation", id, "tool", name, "error", err)
		return nil, err
	}

	r.logger.Debug("tool completed",
		"invocation", id, "tool", name,
		"is_error", result.IsError,
		"duration", time.Since(start))
	return result, nil
}

// HasTool reports whether a tool with the given name is registered.
func (r *Runtime) HasTool(name string) bool {
	r.mu.RLock()
	_, ok := r.tools[name]
	r.mu.RUnlock()
	return ok
}

// ToolCount returns the number of registered tools.
func (r *Runtime) ToolCount() int {
	r.mu.RLock()
	n := len(r.tools)
	r.mu.RUnlock()
	return n
}

// ListTools returns the registered tools sorted by name.
func (r *Runtime) ListTools() []*mcp.Tool {
	r.mu.RLock()
	tools := make([]*mcp.Tool, 0, len(r.tools))
	for _, entry := range r.tools {
		tools = append(tools, entry.tool)
	}
	r.mu.RUnlock()

	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}
