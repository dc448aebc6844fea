// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemini2026/runn-mcp-server/internal/report"
	"github.com/gemini2026/runn-mcp-server/internal/runn"
	"github.com/gemini2026/runn-mcp-server/internal/toolkit"
)

func (s *Service) registerScheduleTools(rt *toolkit.Runtime) {
	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_assignments",
		Description: "List all assignments (planned allocations of people to projects) as raw upstream records.",
		Annotations: readOnly(),
	}, s.listAssignments)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_assignments_by_person",
		Description: "List assignments for a single person, optionally restricted to those starting within a date range (start/end, YYYY-MM-DD).",
		Annotations: readOnly(),
	}, s.listAssignmentsByPerson)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_assignments_by_project",
		Description: "List assignments for a single project, optionally restricted to those starting within a date range (start/end, YYYY-MM-DD).",
		Annotations: readOnly(),
	}, s.listAssignmentsByProject)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_actuals",
		Description: "List all actuals (logged hours) as raw upstream records.",
		Annotations: readOnly(),
	}, s.listActuals)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_actuals_by_date_range",
		Description: "List actuals whose date falls within an inclusive range (start/end, YYYY-MM-DD; both required).",
		Annotations: readOnly(),
	}, s.listActualsByDateRange)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_actuals_by_person",
		Description: "List actuals logged by a single person.",
		Annotations: readOnly(),
	}, s.listActualsByPerson)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_actuals_by_project",
		Description: "List actuals logged against a single project.",
		Annotations: readOnly(),
	}, s.listActualsByProject)
}

func (s *Service) listAssignments(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, recordsOutput, error) {
	assignments, err := s.client.ListAll(ctx, "/assignments", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(assignments), nil
}

type scopedRangeInput struct {
	PersonID  string `json:"person_id,omitempty" jsonschema:"the person id to scope by"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"the project id to scope by"`
	Start     string `json:"start,omitempty" jsonschema:"inclusive range start date, YYYY-MM-DD"`
	End       string `json:"end,omitempty" jsonschema:"inclusive range end date, YYYY-MM-DD"`
}

// scopedAssignments fetches assignments filtered by one foreign key and an
// optional range over their start date. Arguments are validated before the
// upstream is contacted.
func (s *Service) scopedAssignments(ctx context.Context, field, value, start, end string) ([]runn.Record, error) {
	r, ranged, err := optionalRange(start, end)
	if err != nil {
		return nil, err
	}

	assignments, err := s.client.ListAll(ctx, "/assignments", nil)
	if err != nil {
		return nil, err
	}

	assignments = report.FilterByForeignKey(assignments, field, value)
	if ranged {
		assignments = report.FilterByDateRange(assignments, "startDate", r)
	}
	return assignments, nil
}

func (s *Service) listAssignmentsByPerson(ctx context.Context, _ *mcp.CallToolRequest, in scopedRangeInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.PersonID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("person_id")
	}
	assignments, err := s.scopedAssignments(ctx, "personId", in.PersonID, in.Start, in.End)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(assignments), nil
}

func (s *Service) listAssignmentsByProject(ctx context.Context, _ *mcp.CallToolRequest, in scopedRangeInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.ProjectID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("project_id")
	}
	assignments, err := s.scopedAssignments(ctx, "projectId", in.ProjectID, in.Start, in.End)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(assignments), nil
}

func (s *Service) listActuals(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, recordsOutput, error) {
	actuals, err := s.client.ListAll(ctx, "/actuals", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(actuals), nil
}

type dateRangeInput struct {
	Start string `json:"start" jsonschema:"inclusive range start date, YYYY-MM-DD"`
	End   string `json:"end" jsonschema:"inclusive range end date, YYYY-MM-DD"`
}

func (s *Service) listActualsByDateRange(ctx context.Context, _ *mcp.CallToolRequest, in dateRangeInput) (*mcp.CallToolResult, recordsOutput, error) {
	r, err := requiredRange(in.Start, in.End)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	actuals, err := s.client.ListAll(ctx, "/actuals", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(report.FilterByDateRange(actuals, "date", r)), nil
}

func (s *Service) listActualsByPerson(ctx context.Context, _ *mcp.CallToolRequest, in byPersonInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.PersonID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("person_id")
	}
	actuals, err := s.client.ListAll(ctx, "/actuals", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(report.FilterByForeignKey(actuals, "personId", in.PersonID)), nil
}

func (s *Service) listActualsByProject(ctx context.Context, _ *mcp.CallToolRequest, in byProjectInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.ProjectID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("project_id")
	}
	actuals, err := s.client.ListAll(ctx, "/actuals", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(report.FilterByForeignKey(actuals, "projectId", in.ProjectID)), nil
}
