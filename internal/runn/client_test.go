// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package runn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemini2026/runn-mcp-server/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIKey:      "LIVE_test",
		BaseURL:     baseURL,
		MaxPages:    10,
		HTTPTimeout: 5 * time.Second,
	}
}

// pagedUpstream serves /projects as three cursor pages of 50/50/20 records.
func pagedUpstream(t *testing.T, hits *int) *httptest.Server {
	t.Helper()

	sizes := map[string]struct {
		offset, count int
		next          string
	}{
		"":   {0, 50, "c1"},
		"c1": {50, 50, "c2"},
		"c2": {100, 20, ""},
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		require.Equal(t, "Bearer LIVE_test", r.Header.Get("Authorization"))
		require.Equal(t, "/projects", r.URL.Path)

		p, ok := sizes[r.URL.Query().Get("cursor")]
		require.True(t, ok, "unexpected cursor %q", r.URL.Query().Get("cursor"))

		values := make([]map[string]any, 0, p.count)
		for i := 0; i < p.count; i++ {
			values = append(values, map[string]any{"id": p.offset + i, "name": fmt.Sprintf("project-%d", p.offset+i)})
		}
		json.NewEncoder(w).Encode(map[string]any{"values": values, "nextCursor": p.next})
	}))
}

func TestListAllConcatenatesPages(t *testing.T) {
	var hits int
	srv := pagedUpstream(t, &hits)
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	records, err := c.ListAll(context.Background(), "/projects", nil)
	require.NoError(t, err)
	require.Len(t, records, 120)
	assert.Equal(t, 3, hits)

	// Upstream order preserved, no duplicates.
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		id, ok := rec.String("id")
		require.True(t, ok)
		assert.Equal(t, fmt.Sprint(i), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestListAllIdempotent(t *testing.T) {
	var hits int
	srv := pagedUpstream(t, &hits)
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	first, err := c.ListAll(context.Background(), "/projects", nil)
	require.NoError(t, err)
	second, err := c.ListAll(context.Background(), "/projects", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListAllCyclingCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always hands back the same cursor.
		json.NewEncoder(w).Encode(map[string]any{
			"values":     []map[string]any{{"id": 1}},
			"nextCursor": "loop",
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxPages = 4
	c := NewClient(cfg, nil)

	_, err := c.ListAll(context.Background(), "/actuals", nil)
	assert.True(t, errors.Is(err, ErrPaginationLimit))
}

func TestListPageSingleRequest(t *testing.T) {
	var hits int
	srv := pagedUpstream(t, &hits)
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	records, err := c.ListPage(context.Background(), "/projects", nil)
	require.NoError(t, err)
	assert.Len(t, records, 50, "single page, cursor discarded")
	assert.Equal(t, 1, hits)
}

func TestListAllBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"id": "a"}, {"id": "b"}})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	records, err := c.ListAll(context.Background(), "/teams", nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRequestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"invalid token"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	_, _, err := c.Request(context.Background(), http.MethodGet, "/people", nil, nil)
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusForbidden, ue.Status)
	assert.Contains(t, ue.Body, "invalid token")
}

func TestRequestForwardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body["name"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":9,"name":"Acme"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	status, raw, err := c.Request(context.Background(), http.MethodPost, "/clients", nil, map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":9,"name":"Acme"}`, string(raw))
}
