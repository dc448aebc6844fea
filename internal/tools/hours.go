// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemini2026/runn-mcp-server/internal/report"
	"github.com/gemini2026/runn-mcp-server/internal/toolkit"
)

func (s *Service) registerHoursTool(rt *toolkit.Runtime) {
	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "billable_hours",
		Description: "Aggregate billable hours from actuals, grouped by project, person, and month. All arguments are optional: start/end restrict the date range, project_id/person_id scope the aggregation.",
		Annotations: readOnly(),
	}, s.billableHours)
}

type billableHoursInput struct {
	Start     string `json:"start,omitempty" jsonschema:"inclusive range start date, YYYY-MM-DD"`
	End       string `json:"end,omitempty" jsonschema:"inclusive range end date, YYYY-MM-DD"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict to a single project"`
	PersonID  string `json:"person_id,omitempty" jsonschema:"restrict to a single person"`
}

type billableHoursOutput struct {
	Rows       []report.HoursRow `json:"rows"`
	TotalHours float64           `json:"total_hours"`
}

// BillableHours runs the aggregation pipeline: fetch actuals, apply the
// optional date and foreign-key scoping, fold into buckets, and flatten to
// sorted rows. It backs both the billable_hours tool and the report
// command.
func (s *Service) BillableHours(ctx context.Context, start, end, projectID, personID string) ([]report.HoursRow, error) {
	r, ranged, err := optionalRange(start, end)
	if err != nil {
		return nil, err
	}

	actuals, err := s.client.ListAll(ctx, "/actuals", nil)
	if err != nil {
		return nil, err
	}

	if ranged {
		actuals = report.FilterByDateRange(actuals, "date", r)
	}
	if projectID != "" {
		actuals = report.FilterByForeignKey(actuals, "projectId", projectID)
	}
	if personID != "" {
		actuals = report.FilterByForeignKey(actuals, "personId", personID)
	}

	buckets, err := report.GroupBillableHours(actuals, s.strict)
	if err != nil {
		return nil, err
	}
	return report.HoursRows(buckets), nil
}

func (s *Service) billableHours(ctx context.Context, _ *mcp.CallToolRequest, in billableHoursInput) (*mcp.CallToolResult, billableHoursOutput, error) {
	rows, err := s.BillableHours(ctx, in.Start, in.End, in.ProjectID, in.PersonID)
	if err != nil {
		return nil, billableHoursOutput{}, err
	}

	var total float64
	for _, row := range rows {
		total += row.Hours
	}
	if rows == nil {
		rows = []report.HoursRow{}
	}
	return nil, billableHoursOutput{Rows: rows, TotalHours: total}, nil
}
