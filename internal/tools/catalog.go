// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tools defines the Runn tool catalog: the named operations an MCP
// client can invoke, their argument schemas, and the handlers composing
// the HTTP adapter with the report engine.
package tools

import (
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemini2026/runn-mcp-server/internal/report"
	"github.com/gemini2026/runn-mcp-server/internal/runn"
	"github.com/gemini2026/runn-mcp-server/internal/toolkit"
)

// Service carries the collaborators shared by every tool handler.
type Service struct {
	client *runn.Client
	strict bool
	logger *slog.Logger
}

// NewService builds the handler set. strict selects the fail-on-malformed-
// record aggregation policy.
func NewService(client *runn.Client, strict bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, strict: strict, logger: logger}
}

// Register adds the full Runn catalog to the runtime.
func Register(rt *toolkit.Runtime, s *Service) {
	s.registerProjectTools(rt)
	s.registerPeopleTools(rt)
	s.registerScheduleTools(rt)
	s.registerHoursTool(rt)
	s.registerPassthroughTool(rt)
}

func boolPtr(b bool) *bool { return &b }

// readOnly marks list tools: no upstream mutation, repeatable, closed
// world (they only ever touch the configured Runn account).
func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// recordsOutput is the raw passthrough list shape.
type recordsOutput struct {
	Items []runn.Record `json:"items"`
	Count int           `json:"count"`
}

func records(items []runn.Record) recordsOutput {
	if items == nil {
		items = []runn.Record{}
	}
	return recordsOutput{Items: items, Count: len(items)}
}

// summariesOutput is the reduced id/name list shape.
type summariesOutput struct {
	Items []report.Summary `json:"items"`
	Count int              `json:"count"`
}

func summaries(items []runn.Record) summariesOutput {
	out := report.Summarize(items)
	return summariesOutput{Items: out, Count: len(out)}
}

// optionalRange interprets optional start/end date arguments. A missing
// bound is left open. Returns ok=false when neither bound was supplied.
// Argument parse failures surface before any upstream call.
func optionalRange(start, end string) (r report.DateRange, ok bool, err error) {
	if start == "" && end == "" {
		return report.DateRange{}, false, nil
	}

	r.Start = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	r.End = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	if start != "" {
		if r.Start, err = report.ParseDate(start); err != nil {
			return report.DateRange{}, false, toolkit.InvalidArgument("start", err)
		}
	}
	if end != "" {
		if r.End, err = report.ParseDate(end); err != nil {
			return report.DateRange{}, false, toolkit.InvalidArgument("end", err)
		}
	}
	return r, true, nil
}

// requiredRange is optionalRange with both bounds mandatory.
func requiredRange(start, end string) (report.DateRange, error) {
	if start == "" {
		return report.DateRange{}, toolkit.MissingArgument("start")
	}
	if end == "" {
		return report.DateRange{}, toolkit.MissingArgument("end")
	}
	r, _, err := optionalRange(start, end)
	return r, err
}
