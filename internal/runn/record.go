// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package runn

import (
	"encoding/json"
	"strconv"
)

// Record is an upstream-defined JSON object. The server treats it as
// opaque except for the few fields the report engine reads (personId,
// projectId, teamId, date, hours, id, name, email).
type Record map[string]any

// String returns a record field normalized to its canonical string form.
// JSON numbers become their shortest decimal representation, so a numeric
// id 42 and the argument "42" compare equal. Returns false when the field
// is absent, null, or not a scalar.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Float returns a numeric record field. String-typed numbers are parsed,
// matching upstream payloads that quote decimals.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns a boolean record field; absent or non-boolean fields
// report false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}
