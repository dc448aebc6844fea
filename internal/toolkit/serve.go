// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package toolkit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServeStdio runs the MCP server over standard input/output until the
// context is canceled or the client disconnects.
func (r *Runtime) ServeStdio(ctx context.Context) error {
	r.logger.Info("starting MCP server", "server", r.impl.Name, "transport", "stdio", "tools", r.ToolCount())
	return r.server.Run(ctx, &mcp.StdioTransport{})
}

// ServeHTTP exposes the MCP server over the streamable HTTP transport on
// addr. It blocks until the context is canceled, then shuts the listener
// down gracefully.
func (r *Runtime) ServeHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return r.server
	}, nil)

	srv := &http.Server{Addr: addr, Handler: handler}
	r.logger.Info("starting MCP server", "server", r.impl.Name, "transport", "http", "addr", addr, "tools", r.ToolCount())

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
