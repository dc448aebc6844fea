// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemini2026/runn-mcp-server/internal/config"
	"github.com/gemini2026/runn-mcp-server/internal/runn"
	"github.com/gemini2026/runn-mcp-server/internal/toolkit"
	"github.com/gemini2026/runn-mcp-server/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "runn-mcp"
	serverVersion = "1.0.0"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           serverName,
		Short:         "MCP server for the Runn resource-planning API",
		Long:          "runn-mcp exposes Runn projects, people, assignments, actuals, and\nbillable-hours reporting as MCP tools over stdio or HTTP.",
		Version:       serverVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to an optional YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, or error")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newReportCmd(flags))
	cmd.AddCommand(newToolsCmd(flags))
	return cmd
}

// newLogger builds the JSON stderr logger. Stdout stays reserved for the
// stdio MCP transport.
func (f *rootFlags) newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("parsing --log-level: %w", err)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// loadConfig loads configuration from the optional file and environment.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	return config.Load(f.configPath)
}

// buildRuntime assembles the full dispatcher: client, tool catalog,
// transports. Requires a validated configuration.
func buildRuntime(cfg *config.Config, logger *slog.Logger) *toolkit.Runtime {
	client := runn.NewClient(cfg, &runn.Options{Logger: logger})
	rt := toolkit.New(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &toolkit.Options{Logger: logger})

	tools.Register(rt, tools.NewService(client, cfg.StrictRecords, logger))
	return rt
}
