package route

import (
	"fmt"
	"sort"
	"strings"
)

// Values is a case-insensitive mapping from route key to value.
// Two keys that differ only in case address the same entry.
type Values struct {
	entries map[string]entry
}

type entry struct {
	key   string
	value any
}

// ValuesOf builds Values from a plain map. When the map holds keys that
// differ only in case, the entry with the lexically greatest key wins.
func ValuesOf(m map[string]any) Values {
	var v Values
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Set(k, m[k])
	}
	return v
}

func fold(key string) string {
	return strings.ToLower(key)
}

// Set stores value under key, replacing any entry whose key matches case-insensitively.
func (v *Values) Set(key string, value any) {
	if v.entries == nil {
		v.entries = make(map[string]entry)
	}
	v.entries[fold(key)] = entry{key: key, value: value}
}

// Get returns the value stored under key.
func (v Values) Get(key string) (any, bool) {
	e, ok := v.entries[fold(key)]
	return e.value, ok
}

// StringValue returns the value under key formatted with %v, or "" if absent.
func (v Values) StringValue(key string) string {
	val, ok := v.Get(key)
	if !ok || val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

func (v Values) Has(key string) bool {
	_, ok := v.entries[fold(key)]
	return ok
}

// Delete removes key if present.
func (v *Values) Delete(key string) {
	delete(v.entries, fold(key))
}

func (v Values) Len() int {
	return len(v.entries)
}

// Keys returns the stored keys, with their original casing, sorted case-insensitively.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		keys = append(keys, e.key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fold(keys[i]) < fold(keys[j])
	})
	return keys
}

// Map returns a copy of the entries as a plain map keyed by original casing.
func (v Values) Map() map[string]any {
	m := make(map[string]any, len(v.entries))
	for _, e := range v.entries {
		m[e.key] = e.value
	}
	return m
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	var c Values
	for _, e := range v.entries {
		c.Set(e.key, e.value)
	}
	return c
}

// Merge returns a copy of v overlaid with other; other wins on conflicts.
func (v Values) Merge(other Values) Values {
	c := v.Clone()
	for _, e := range other.entries {
		c.Set(e.key, e.value)
	}
	return c
}

func (v Values) String() string {
	parts := make([]string, 0, len(v.entries))
	for _, k := range v.Keys() {
		val, _ := v.Get(k)
		parts = append(parts, fmt.Sprintf("%s=%v", k, val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
