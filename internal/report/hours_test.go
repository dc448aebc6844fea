// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemini2026/runn-mcp-server/internal/runn"
)

func sampleActuals() []runn.Record {
	return []runn.Record{
		{"projectId": "P1", "personId": "A", "date": "2025-01-10", "hours": 5},
		{"projectId": "P1", "personId": "A", "date": "2025-01-20", "hours": 3},
		{"projectId": "P2", "personId": "B", "date": "2025-02-01", "hours": 8},
	}
}

func TestGroupBillableHours(t *testing.T) {
	buckets, err := GroupBillableHours(sampleActuals(), false)
	require.NoError(t, err)

	want := map[Bucket]float64{
		{ProjectID: "P1", PersonID: "A", Month: "2025-01"}: 8,
		{ProjectID: "P2", PersonID: "B", Month: "2025-02"}: 8,
	}
	assert.Equal(t, want, buckets)
}

func TestGroupBillableHoursOrderIndependent(t *testing.T) {
	records := sampleActuals()
	want, err := GroupBillableHours(records, false)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]runn.Record(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := GroupBillableHours(shuffled, false)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGroupBillableHoursSkipsMalformed(t *testing.T) {
	records := append(sampleActuals(),
		runn.Record{"projectId": "P3", "date": "2025-03-01", "hours": 4}, // no person
		runn.Record{"projectId": "P3", "personId": "C", "hours": 4},     // no date
		runn.Record{"projectId": "P3", "personId": "C", "date": "2025-03-01"},
		runn.Record{"projectId": "P3", "personId": "C", "date": "bad", "hours": 4},
	)

	buckets, err := GroupBillableHours(records, false)
	require.NoError(t, err)
	assert.Len(t, buckets, 2, "malformed records skipped silently")
}

func TestGroupBillableHoursStrict(t *testing.T) {
	records := append(sampleActuals(), runn.Record{"projectId": "P3", "hours": 4})

	_, err := GroupBillableHours(records, true)
	assert.Error(t, err, "strict mode fails the whole aggregation")
}

func TestHoursRowsSorted(t *testing.T) {
	buckets := map[Bucket]float64{
		{ProjectID: "P2", PersonID: "B", Month: "2025-02"}: 8,
		{ProjectID: "P1", PersonID: "B", Month: "2025-01"}: 2,
		{ProjectID: "P1", PersonID: "A", Month: "2025-01"}: 8,
	}

	rows := HoursRows(buckets)
	require.Len(t, rows, 3)
	assert.Equal(t, HoursRow{Month: "2025-01", ProjectID: "P1", PersonID: "A", Hours: 8}, rows[0])
	assert.Equal(t, HoursRow{Month: "2025-01", ProjectID: "P1", PersonID: "B", Hours: 2}, rows[1])
	assert.Equal(t, HoursRow{Month: "2025-02", ProjectID: "P2", PersonID: "B", Hours: 8}, rows[2])
}

func TestSummarizePeople(t *testing.T) {
	people := []runn.Record{
		{"id": 1, "firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		{"id": 2, "firstName": "Solo", "email": ""},
		{"id": 3, "name": "Already Named"},
	}

	got := SummarizePeople(people)
	require.Len(t, got, 3)
	assert.Equal(t, PersonSummary{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"}, got[0])
	assert.Equal(t, "Solo", got[1].Name, "missing lastName joins trimmed")
	assert.Equal(t, "Already Named", got[2].Name)
}

func TestWriteCSV(t *testing.T) {
	rows := []HoursRow{
		{Month: "2025-01", ProjectID: "P1", PersonID: "A", Hours: 8},
		{Month: "2025-02", ProjectID: "P2", PersonID: "B", Hours: 8.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "month,project_id,person_id,hours\n" +
		"2025-01,P1,A,8\n" +
		"2025-02,P2,B,8.5\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePDF(t *testing.T) {
	rows := []HoursRow{{Month: "2025-01", ProjectID: "P1", PersonID: "A", Hours: 8}}
	path := filepath.Join(t.TempDir(), "hours.pdf")

	require.NoError(t, WritePDF(path, "Billable hours", rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
