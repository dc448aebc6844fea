// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"strings"

	"github.com/gemini2026/runn-mcp-server/internal/runn"
)

// Summary is the reduced id/name projection used as the default output
// shape for projects, clients, teams, roles, and skills.
type Summary struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

// PersonSummary is the reduced projection for people.
type PersonSummary struct {
	ID    any    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Summarize projects records to their id/name shape. Ids pass through
// untouched so numeric upstream ids stay numeric in the output.
func Summarize(records []runn.Record) []Summary {
	out := make([]Summary, 0, len(records))
	for _, rec := range records {
		name, _ := rec.String("name")
		out = append(out, Summary{ID: rec["id"], Name: name})
	}
	return out
}

// SummarizePeople projects person records to id/name/email. Runn person
// records carry firstName/lastName rather than a single name field; the
// display name is the trimmed join of the two.
func SummarizePeople(records []runn.Record) []PersonSummary {
	out := make([]PersonSummary, 0, len(records))
	for _, rec := range records {
		name, ok := rec.String("name")
		if !ok {
			first, _ := rec.String("firstName")
			last, _ := rec.String("lastName")
			name = strings.TrimSpace(first + " " + last)
		}
		email, _ := rec.String("email")
		out = append(out, PersonSummary{ID: rec["id"], Name: name, Email: email})
	}
	return out
}
