// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		transport string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio or HTTP transport)",
		Long: `Run runn-mcp as a Model Context Protocol server.

The stdio transport is for agent hosts that spawn the server as a
subprocess, for example:

  {
    "mcpServers": {
      "runn": {
        "command": "runn-mcp",
        "args": ["serve"],
        "env": { "RUNN_API_KEY": "LIVE_..." }
      }
    }
  }

The http transport exposes the streamable HTTP endpoint on --addr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := flags.newLogger()
			if err != nil {
				return err
			}
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			rt := buildRuntime(cfg, logger)
			switch transport {
			case "stdio":
				return rt.ServeStdio(cmd.Context())
			case "http":
				return rt.ServeHTTP(cmd.Context(), addr)
			default:
				return fmt.Errorf("unknown transport %q (use 'stdio' or 'http')", transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address for the http transport")
	return cmd
}
