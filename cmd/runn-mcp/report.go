// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemini2026/runn-mcp-server/internal/report"
	"github.com/gemini2026/runn-mcp-server/internal/runn"
	"github.com/gemini2026/runn-mcp-server/internal/tools"
)

func newReportCmd(flags *rootFlags) *cobra.Command {
	var (
		start     string
		end       string
		projectID string
		personID  string
		csvPath   string
		pdfPath   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a billable-hours report as CSV and/or PDF",
		Long: `Run the billable-hours aggregation directly, without an MCP client,
and write the grouped rows to file. At least one of --csv or --pdf is
required.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if csvPath == "" && pdfPath == "" {
				return fmt.Errorf("at least one of --csv or --pdf is required")
			}

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

			client := runn.NewClient(cfg, &runn.Options{Logger: logger})
			svc := tools.NewService(client, cfg.StrictRecords, logger)

			rows, err := svc.BillableHours(cmd.Context(), start, end, projectID, personID)
			if err != nil {
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				if err := report.WriteCSV(f, rows); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				logger.Info("wrote billable-hours report", "format", "csv", "path", csvPath, "rows", len(rows))
			}
			if pdfPath != "" {
				if err := report.WritePDF(pdfPath, "Billable hours by project, person, and month", rows); err != nil {
					return err
				}
				logger.Info("wrote billable-hours report", "format", "pdf", "path", pdfPath, "rows", len(rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "inclusive range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "inclusive range end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectID, "project-id", "", "restrict to a single project")
	cmd.Flags().StringVar(&personID, "person-id", "", "restrict to a single person")
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV output path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF output path")
	return cmd
}
