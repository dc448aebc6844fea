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

func (s *Service) registerProjectTools(rt *toolkit.Runtime) {
	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all Runn projects in the reduced {id, name} shape.",
		Annotations: readOnly(),
	}, s.listProjects)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_clients",
		Description: "List all Runn clients in the reduced {id, name} shape.",
		Annotations: readOnly(),
	}, s.listClients)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_rate_cards",
		Description: "List all rate cards as raw upstream records.",
		Annotations: readOnly(),
	}, s.listRateCards)

	toolkit.AddTool(rt, &mcp.Tool{
		Name:        "list_rate_cards_by_project",
		Description: "List rate cards scoped to a single project.",
		Annotations: readOnly(),
	}, s.listRateCardsByProject)
}

type emptyInput struct{}

func (s *Service) listProjects(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, summariesOutput, error) {
	projects, err := s.client.ListAll(ctx, "/projects", nil)
	if err != nil {
		return nil, summariesOutput{}, err
	}
	return nil, summaries(projects), nil
}

func (s *Service) listClients(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, summariesOutput, error) {
	clients, err := s.client.ListAll(ctx, "/clients", nil)
	if err != nil {
		return nil, summariesOutput{}, err
	}
	return nil, summaries(clients), nil
}

func (s *Service) listRateCards(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, recordsOutput, error) {
	cards, err := s.client.ListAll(ctx, "/rate-cards", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(cards), nil
}

type byProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project id to scope by"`
}

func (s *Service) listRateCardsByProject(ctx context.Context, _ *mcp.CallToolRequest, in byProjectInput) (*mcp.CallToolResult, recordsOutput, error) {
	if in.ProjectID == "" {
		return nil, recordsOutput{}, toolkit.MissingArgument("project_id")
	}
	cards, err := s.client.ListAll(ctx, "/rate-cards", nil)
	if err != nil {
		return nil, recordsOutput{}, err
	}
	return nil, records(report.FilterByForeignKey(cards, "projectId", in.ProjectID)), nil
}
