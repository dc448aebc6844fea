// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package report implements the client-side filtering and aggregation the
// Runn API does not provide itself: date-range and foreign-key scoping of
// fetched collections, billable-hours grouping, reduced projections, and
// the CSV/PDF writers for the grouped output.
//
// Everything here is a pure function over already-fetched records. A
// malformed individual record is skipped rather than failing the whole
// operation; strict mode inverts that policy.
package report

import (
	"time"

	"github.com/gemini2026/runn-mcp-server/internal/runn"
)

// DateRange is an inclusive calendar-date interval. A reversed range
// (Start after End) matches nothing; it is not an error.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range, bounds included.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// ParseDate parses an upstream or argument date. Runn uses plain
// YYYY-MM-DD dates on actuals and assignments but full timestamps appear
// on some resources, so RFC 3339 is accepted as a fallback.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FilterByDateRange retains records whose date field parses and falls
// within the inclusive range. Records with a missing or unparseable date
// are excluded.
func FilterByDateRange(records []runn.Record, field string, r DateRange) []runn.Record {
	var out []runn.Record
	for _, rec := range records {
		raw, ok := rec.String(field)
		if !ok {
			continue
		}
		d, err := ParseDate(raw)
		if err != nil {
			continue
		}
		if r.Contains(d) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByForeignKey retains records whose field equals value after scalar
// normalization, so a numeric upstream id matches its string form. Records
// without the field are excluded.
func FilterByForeignKey(records []runn.Record, field, value string) []runn.Record {
	var out []runn.Record
	for _, rec := range records {
		got, ok := rec.String(field)
		if ok && got == value {
			out = append(out, rec)
		}
	}
	return out
}

// ExcludeArchived drops records whose isArchived flag is set.
func ExcludeArchived(records []runn.Record) []runn.Record {
	var out []runn.Record
	for _, rec := range records {
		if !rec.Bool("isArchived") {
			out = append(out, rec)
		}
	}
	return out
}
