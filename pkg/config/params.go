package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the open-ended part of a section's options: everything except
// the recognized keys. Values come straight from the decoder, so numbers may
// be int, int64 or float64 depending on the source format.
type Params map[string]any

// lookup resolves a dotted key such as "little_calendar.placement".
func (p Params) lookup(key string) (any, bool) {
	var cur any = map[string]any(p)
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p.lookup(key)
	return ok
}

// String returns the value at key as a string, or def if absent.
func (p Params) String(key, def string) string {
	v, ok := p.lookup(key)
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool returns the value at key as a bool, or def if absent or not a bool.
func (p Params) Bool(key string, def bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// Int returns the value at key as an int, or def if absent or not numeric.
func (p Params) Int(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return def
}

// Sub returns the nested table at key, or an empty Params.
func (p Params) Sub(key string) Params {
	v, ok := p.lookup(key)
	if !ok {
		return Params{}
	}
	if m, ok := asMap(v); ok {
		return Params(m)
	}
	return Params{}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Params:
		return m, true
	}
	return nil, false
}
