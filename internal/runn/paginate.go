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
	"net/url"
)

// ErrPaginationLimit is returned when a listing exceeds the configured
// page bound. The bound guards against an upstream that keeps handing back
// cursors; hitting it is an error, never a silent truncation.
var ErrPaginationLimit = errors.New("runn: pagination limit exceeded")

// pageSize is the per-page limit requested from list endpoints when the
// caller did not set one.
const pageSize = "200"

// page is the cursor-paginated list envelope. Runn has carried the cursor
// both at the top level and under meta across API revisions, so both are
// accepted.
type page struct {
	Values     []Record `json:"values"`
	NextCursor string   `json:"nextCursor"`
	Meta       struct {
		NextCursor string `json:"nextCursor"`
	} `json:"meta"`
}

// decodePage extracts records and the continuation cursor from a list
// response body. Bare JSON arrays are accepted as a single cursor-less
// page.
func decodePage(raw json.RawMessage) ([]Record, string, error) {
	var p page
	if err := json.Unmarshal(raw, &p); err == nil && p.Values != nil {
		cursor := p.NextCursor
		if cursor == "" {
			cursor = p.Meta.NextCursor
		}
		return p.Values, cursor, nil
	}

	var list []Record
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, "", nil
	}
	return nil, "", fmt.Errorf("runn: response is not a list")
}

// ListAll fetches every page of a list endpoint and returns the
// concatenated records in upstream order. The loop is bounded by the
// configured MaxPages and fails with ErrPaginationLimit beyond it.
func (c *Client) ListAll(ctx context.Context, path string, query url.Values) ([]Record, error) {
	q := cloneQuery(query)
	if q.Get("limit") == "" {
		q.Set("limit", pageSize)
	}

	var out []Record
	cursor := ""
	for n := 0; ; n++ {
		if n >= c.maxPages {
			return nil, fmt.Errorf("%w: %s after %d pages", ErrPaginationLimit, path, c.maxPages)
		}
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		_, raw, err := c.Request(ctx, http.MethodGet, path, q, nil)
		if err != nil {
			return nil, err
		}
		values, next, err := decodePage(raw)
		if err != nil {
			return nil, err
		}

		out = append(out, values...)
		if next == "" {
			return out, nil
		}
		cursor = next
	}
}

// ListPage fetches exactly one page and discards any continuation cursor.
// Callers opting out of pagination get a documented partial result, not an
// error.
func (c *Client) ListPage(ctx context.Context, path string, query url.Values) ([]Record, error) {
	q := cloneQuery(query)
	if q.Get("limit") == "" {
		q.Set("limit", pageSize)
	}

	_, raw, err := c.Request(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	values, _, err := decodePage(raw)
	return values, err
}

func cloneQuery(q url.Values) url.Values {
	out := make(url.Values, len(q)+2)
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
