// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the registered tool catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := flags.newLogger()
			if err != nil {
				return err
			}
			// Listing the catalog needs no API key; skip Validate.
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			rt := buildRuntime(cfg, logger)
			for _, tool := range rt.ListTools() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", tool.Name, tool.Description)
			}
			return nil
		},
	}
}
