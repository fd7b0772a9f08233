package models

// CategoriaOther is the fallback assigned when a submitted category is
// missing or not part of the fixed set.
const CategoriaOther = "Other"

// categoriasValidas is the single definition of the category set; every
// validation and listing site consumes it from here.
var categoriasValidas = []string{
	"Technology",
	"Education",
	"Lifestyle",
	"Business & Professions",
	"Art & Creativity",
	"Opinion / Community",
	CategoriaOther,
}

// Categorias returns the fixed category set. The set is static, never
// derived from stored articles.
func Categorias() []string {
	out := make([]string, len(categoriasValidas))
	copy(out, categoriasValidas)
	return out
}

// CategoriaValida reports whether c belongs to the fixed category set.
func CategoriaValida(c string) bool {
	for _, v := range categoriasValidas {
		if c == v {
			return true
		}
	}
	return false
}

// NormalizeCategoria returns c when it is valid and fallback otherwise.
func NormalizeCategoria(c, fallback string) string {
	if CategoriaValida(c) {
		return c
	}
	return fallback
}

// CategoriaSinFiltro reports whether a categoria query value means
// "no filter". The frontend sends "Todas"; "All" is accepted as well.
func CategoriaSinFiltro(c string) bool {
	return c == "" || c == "Todas" || c == "All"
}
