package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagsStringSlice(t *testing.T) {
	in := []string{"go", "web"}
	assert.Equal(t, []string{"go", "web"}, NormalizeTags(in))
}

func TestNormalizeTagsAnySlice(t *testing.T) {
	in := []any{"go", 42, "web"}
	assert.Equal(t, []string{"go", "web"}, NormalizeTags(in))
}

func TestNormalizeTagsJSONArray(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, NormalizeTags(`["go","web"]`))
	assert.Equal(t, []string{"go", "web"}, NormalizeTags([]byte(`["go","web"]`)))
}

func TestNormalizeTagsCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "b", "c"}, NormalizeTags("a, b, b, c"))
}

func TestNormalizeTagsMalformedJSONFallsBackToSplit(t *testing.T) {
	// A broken JSON array degrades to the comma-split reading instead of failing.
	assert.Equal(t, []string{`["go"`, `"web]`}, NormalizeTags(`["go","web]`))
}

func TestNormalizeTagsEmptyInputs(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(""))
	assert.Equal(t, []string{}, NormalizeTags("null"))
	assert.Equal(t, []string{}, NormalizeTags("[]"))
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{}, NormalizeTags(42))
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	first := NormalizeTags("go, web , ,api")
	second := NormalizeTags(first)
	assert.Equal(t, first, second)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, SplitTags(" go , web "))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{}, SplitTags(" , , "))
}

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, `["go","web"]`, EncodeTags([]string{"go", "web"}))
	assert.Equal(t, `[]`, EncodeTags(nil))
	assert.Equal(t, `[]`, EncodeTags([]string{}))
}

func TestEncodeTagsRoundTrip(t *testing.T) {
	tags := NormalizeTags("a, b, b, c")
	encoded := EncodeTags(tags)
	assert.Equal(t, tags, NormalizeTags(encoded))
}
