package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScripts(t *testing.T) {
	assert.Equal(t, "Ana", Sanitize(`Ana<script>alert(1)</script>`))

	out := Sanitize(`<img src=x onerror=alert(1)>click`)
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "click")
}

func TestSanitizeKeepsPlainText(t *testing.T) {
	assert.Equal(t, "María José", Sanitize("María José"))
}
