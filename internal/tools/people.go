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

func (s *Service) registerPeopleTools(rt *toolkit.Runtime) {
	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_people",
		Description: "List all people. Returns the reduced {id, name, email} shape by default; set full=true for raw upstream records.",
		Annotations: readOnly(),
	}, s.listPeople)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_teams",
		Description: "List all teams in the reduced {id, name} shape.",
		Annotations: readOnly(),
	}, s.listTeams)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_people_by_team",
		Description: "List the people on a team in the reduced {id, name, email} shape. Archived people are excluded unless include_archived=true.",
		Annotations: readOnly(),
	}, s.listPeopleByTeam)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_roles",
		Description: "List all roles in the reduced {id, name} shape.",
		Annotations: readOnly(),
	}, s.listRoles)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_roles_by_person",
		Description: "List roles scoped to a single person.",
		Annotations: readOnly(),
	}, s.listRolesByPerson)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_skills",
		Description: "List all skills in the reduced {id, name} shape.",
		Annotations: readOnly(),
	}, s.listSkills)
}

type listPeopleInput struct {
	Full bool `json:"full,omitempty" jsonschema:"return raw upstream person records instead of the reduced shape"`
}

type peopleOutput struct {
	Items []report.PersonSummary `json:"items"`
	Count int                    `json:"count"`
}

func people(items []runn.Record) peopleOutput {
	out := report.SummarizePeople(items)
	return peopleOutput{Items: out, Count: len(out)}
}

func (s *Service) listPeople(ctx context.Context, _ *mcp.CallToolRequest, in listPeopleInput) (*mcp.CallToolResult, any, error) {
	all, err := s.client.ListAll(ctx, "/people", nil)
	if err != nil {
		return nil, nil, err
	}
	if in.Full {
		return nil, records(all), nil
	}
	return nil, people(all), nil
}

func (s *Service) listTeams(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, summariesOutput, error) {
	teams, err := s.client.ListAll(ctx, "/teams", nil)
	if err != nil {
		return nil, summariesOutput{}, err
	}
	return nil, summaries(teams), nil
}

type byTeamInput struct {
	TeamID          string `json:"team_id" jsonschema:"the team id to scope by"`
	IncludeArchived bool   `json:"include_archived,omitempty" jsonschema:"include archived people in the result"`
}

func (s *Service) listPeopleByTeam(ctx context.Context, _ *mcp.CallToolRequest, in byTeamInput) (*mcp.CallToolResult, peopleOutput, error) {
	if in.TeamID == "" {
		return nil, peopleOutput{}, toolkit.MissingArgument("team_id")
	}
	all, err := s.client.ListAll(ctx, "/people", nil)
	if err != nil {
		return nil, peopleOutput{}, err
	}

	members := report.FilterByForeignKey(all, "teamId", in.TeamID)
	if !in.IncludeArchived {
		members = report.ExcludeArchived(members)
	}
	return nil, people(members), nil
}

func (s *Service) listRoles(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, summariesOutput, error) {
	roles, err := s.client.ListAll(ctx, "/roles", nil)
	if err != nil {
		return nil, summariesOutput{}, err
	}
	return nil, summaries(roles), nil
}

type byPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"the person id to scope by"`
}

func (s *Service) listRolesByPerson(ctx context.Context, _ *mcp.CallToolRequest, in byPersonInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.PersonID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("person_id")
	}
	roles, err := s.client.ListAll(ctx, "/roles", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(report.FilterByForeignKey(roles, "personId", in.PersonID)), nil
}

func (s *Service) listSkills(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, summariesOutput, error) {
	skills, err := s.client.ListAll(ctx, "/skills", nil)
	if err != nil {
		return nil, summariesOutput{}, err
	}
	return nil, summaries(skills), nil
}
