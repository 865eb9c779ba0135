package labels

import (
	"sort"
	"strings"
)

// SelectorBuilder provides a fluent interface for building label selectors.
type SelectorBuilder struct {
	equals map[string]string
	exists []string
}

// NewSelectorBuilder creates an empty selector builder.
func NewSelectorBuilder() *SelectorBuilder {
	return &SelectorBuilder{equals: map[string]string{}}
}

// WithLabel requires key to equal value.
func (sb *SelectorBuilder) WithLabel(key, value string) *SelectorBuilder {
	sb.equals[key] = value
	return sb
}

// WithKey requires key to be present with any value.
func (sb *SelectorBuilder) WithKey(key string) *SelectorBuilder {
	sb.exists = append(sb.exists, key)
	return sb
}

// Merge adds all labels from the provided map. An empty value means the
// key only has to be present.
func (sb *SelectorBuilder) Merge(extra map[string]string) *SelectorBuilder {
	for k, v := range extra {
		if v == "" {
			sb.WithKey(k)
			continue
		}
		sb.WithLabel(k, v)
	}
	return sb
}

// Build returns the selector string, or "" when nothing was added.
func (sb *SelectorBuilder) Build() string {
	parts := make([]string, 0, len(sb.equals)+len(sb.exists))
	for k, v := range sb.equals {
		parts = append(parts, k+"="+v)
	}
	for _, k := range sb.exists {
		if _, ok := sb.equals[k]; !ok {
			parts = append(parts, k)
		}
	}
	sort.Strings(parts)
	return strings.Join(dedup(parts), ",")
}

// Selector returns the selector for a label map.
func Selector(m map[string]string) string {
	return NewSelectorBuilder().Merge(m).Build()
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i > 0 && s == sorted[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
