package utils

import (
	"encoding/json"
	"strings"
)

// NormalizeTags converts whatever representation the tags arrived in into
// an ordered list of strings. Accepted inputs: a []string (returned as-is),
// a []any produced by generic JSON decoding, and string/[]byte holding
// either a JSON array or a comma separated list. Anything else, including
// nil, yields an empty list. The function never fails: a malformed JSON
// array degrades to the comma-split reading.
func NormalizeTags(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		tags := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case []byte:
		return normalizeTagString(string(t))
	case string:
		return normalizeTagString(t)
	default:
		return []string{}
	}
}

func normalizeTagString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return []string{}
	}
	if strings.HasPrefix(s, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(s), &tags); err == nil {
			if tags == nil {
				tags = []string{}
			}
			return tags
		}
	}
	return SplitTags(s)
}

// SplitTags splits a comma separated tag string, trimming each segment and
// dropping empty ones. Order and duplicates are preserved.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// EncodeTags serializes tags to the canonical JSON array form used for
// storage, regardless of how they were originally supplied.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
