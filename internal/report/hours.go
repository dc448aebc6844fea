// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"sort"

	"github.com/gemini2026/runn-mcp-server/internal/runn"
)

// Bucket keys the billable-hours aggregation: one accumulator per
// project, person, and calendar month. Month is "YYYY-MM" so lexicographic
// order is chronological order.
type Bucket struct {
	ProjectID string
	PersonID  string
	Month     string
}

// HoursRow is one aggregated bucket in report output order.
type HoursRow struct {
	Month     string  `json:"month"`
	ProjectID string  `json:"project_id"`
	PersonID  string  `json:"person_id"`
	Hours     float64 `json:"hours"`
}

// GroupBillableHours folds actuals into per-bucket hour sums. A record
// contributes when it carries a project id, a person id, a parseable date,
// and an hours value; anything else is skipped, or fails the whole
// aggregation when strict is set. Accumulation is commutative, so the
// result is independent of input order.
func GroupBillableHours(records []runn.Record, strict bool) (map[Bucket]float64, error) {
	buckets := make(map[Bucket]float64)
	for i, rec := range records {
		projectID, okProject := rec.String("projectId")
		personID, okPerson := rec.String("personId")
		hours, okHours := rec.Float("hours")
		rawDate, okDate := rec.String("date")

		var month string
		if okDate {
			d, err := ParseDate(rawDate)
			if err != nil {
				okDate = false
			} else {
				month = d.Format("2006-01")
			}
		}

		if !okProject || !okPerson || !okHours || !okDate {
			if strict {
				return nil, fmt.Errorf("report: record %d is missing projectId, personId, date, or hours", i)
			}
			continue
		}
		buckets[Bucket{ProjectID: projectID, PersonID: personID, Month: month}] += hours
	}
	return buckets, nil
}

// HoursRows flattens buckets into rows sorted by month, then project,
// then person, for deterministic report output.
func HoursRows(buckets map[Bucket]float64) []HoursRow {
	rows := make([]HoursRow, 0, len(buckets))
	for b, hours := range buckets {
		rows = append(rows, HoursRow{Month: b.Month, ProjectID: b.ProjectID, PersonID: b.PersonID, Hours: hours})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.ProjectID != b.ProjectID {
			return a.ProjectID < b.ProjectID
		}
		return a.PersonID < b.PersonID
	})
	return rows
}
