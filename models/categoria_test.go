package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriasFixedSet(t *testing.T) {
	got := Categorias()
	assert.Equal(t, []string{
		"Technology",
		"Education",
		"Lifestyle",
		"Business & Professions",
		"Art & Creativity",
		"Opinion / Community",
		"Other",
	}, got)

	// The returned slice is a copy; mutating it must not leak into the set.
	got[0] = "Hacked"
	assert.Equal(t, "Technology", Categorias()[0])
}

func TestCategoriaValida(t *testing.T) {
	assert.True(t, CategoriaValida("Technology"))
	assert.True(t, CategoriaValida("Other"))
	assert.False(t, CategoriaValida("technology"))
	assert.False(t, CategoriaValida("Deportes"))
	assert.False(t, CategoriaValida(""))
}

func TestNormalizeCategoria(t *testing.T) {
	assert.Equal(t, "Education", NormalizeCategoria("Education", CategoriaOther))
	assert.Equal(t, "Other", NormalizeCategoria("Deportes", CategoriaOther))
	assert.Equal(t, "Other", NormalizeCategoria("", CategoriaOther))
	// Updates fall back to the article's current category instead.
	assert.Equal(t, "Lifestyle", NormalizeCategoria("nope", "Lifestyle"))
}

func TestCategoriaSinFiltro(t *testing.T) {
	assert.True(t, CategoriaSinFiltro(""))
	assert.True(t, CategoriaSinFiltro("Todas"))
	assert.True(t, CategoriaSinFiltro("All"))
	assert.False(t, CategoriaSinFiltro("Other"))
	assert.False(t, CategoriaSinFiltro("todas"))
}
