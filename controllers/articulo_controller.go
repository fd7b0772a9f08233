package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pardomauro/goblog/config"
	"github.com/pardomauro/goblog/models"
	"github.com/pardomauro/goblog/utils"
)

// maxImagenSize bounds uploaded article images.
const maxImagenSize = 5 * 1024 * 1024

// ArticuloController manages CRUD operations for articles.
type ArticuloController struct {
	db *gorm.DB
}

// NewArticuloController creates a new ArticuloController instance.
func NewArticuloController(db *gorm.DB) *ArticuloController {
	return &ArticuloController{db: db}
}

// ListArticulos returns all articles, newest first, optionally restricted
// to one category ("Todas" or unset means no filter) and to a search term
// matched against title and body.
func (a *ArticuloController) ListArticulos(ctx *gin.Context) {
	categoria := strings.TrimSpace(ctx.Query("categoria"))
	buscar := strings.TrimSpace(ctx.Query("buscar"))

	// Cache plain and per-category listings; search terms would explode the key space.
	cacheKey := "cache:articulos:list:cat=" + categoria
	if buscar == "" {
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	query := a.db.Order("created_at DESC")
	if !models.CategoriaSinFiltro(categoria) {
		query = query.Where("categoria = ?", categoria)
	}
	if buscar != "" {
		like := "%" + buscar + "%"
		query = query.Where("titulo LIKE ? OR contenido LIKE ?", like, like)
	}

	var articulos []models.Articulo
	if err := query.Find(&articulos).Error; err != nil {
		utils.Sugar.Errorf("failed to list articles: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if buscar == "" {
		utils.CacheSetJSON(cacheKey, gin.H{"success": true, "articulos": articulos}, time.Hour)
	}
	utils.Success(ctx, gin.H{"articulos": articulos})
}

// GetArticulo returns a single article with normalized tags.
func (a *ArticuloController) GetArticulo(ctx *gin.Context) {
	id := ctx.Param("id")

	if b, ok := utils.CacheGetBytes("cache:articulo:detail:" + id); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var articulo models.Articulo
	if err := a.db.First(&articulo, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Artículo no encontrado")
			return
		}
		utils.Sugar.Errorf("failed to load article %s: %v", id, err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.CacheSetJSON("cache:articulo:detail:"+id, gin.H{"success": true, "articulo": articulo}, time.Hour)
	utils.Success(ctx, gin.H{"articulo": articulo})
}

// ListCategorias returns the fixed category set. The list is static,
// never derived from stored rows.
func (a *ArticuloController) ListCategorias(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"categorias": models.Categorias()})
}

// CreateArticulo creates an article from a multipart form with an optional
// image. Tags arrive as a comma separated string and are stored as a JSON
// array; an invalid or missing category falls back to "Other".
func (a *ArticuloController) CreateArticulo(ctx *gin.Context) {
	titulo := utils.Sanitize(strings.TrimSpace(ctx.PostForm("titulo")))
	contenido := utils.Sanitize(strings.TrimSpace(ctx.PostForm("contenido")))
	autor := utils.Sanitize(strings.TrimSpace(ctx.PostForm("autor")))

	if titulo == "" || contenido == "" || autor == "" {
		utils.Error(ctx, http.StatusBadRequest, "Título, contenido y autor son requeridos")
		return
	}

	categoria := models.NormalizeCategoria(ctx.PostForm("categoria"), models.CategoriaOther)
	tags := utils.SplitTags(ctx.PostForm("tags"))

	var imageURL *string
	if file, err := ctx.FormFile("imagen"); err == nil {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		default:
			utils.Error(ctx, http.StatusBadRequest, "Formato de imagen no soportado")
			return
		}
		if file.Size > maxImagenSize {
			utils.Error(ctx, http.StatusBadRequest, "La imagen supera el tamaño máximo de 5MB")
			return
		}

		dir := config.Get().UploadDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			utils.Sugar.Errorf("failed to create upload directory: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		name := uuid.NewString() + ext
		if err := ctx.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			utils.Sugar.Errorf("failed to save uploaded image: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		url := "/uploads/" + name
		imageURL = &url
	}

	articulo := models.Articulo{
		Titulo:    titulo,
		Contenido: contenido,
		Autor:     autor,
		Categoria: categoria,
		Tags:      models.TagList(tags),
		ImageURL:  imageURL,
	}

	if err := a.db.Create(&articulo).Error; err != nil {
		utils.Sugar.Errorf("failed to create article: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.InvalidateByPrefix("cache:articulos:list:")

	utils.Created(ctx, gin.H{
		"message":  "Artículo creado exitosamente",
		"articulo": articulo,
	})
}

// UpdateArticulo applies a partial update. Omitted or empty fields keep
// their previous values; an invalid category falls back to the stored one;
// tags are re-split when supplied and re-normalized from storage otherwise.
func (a *ArticuloController) UpdateArticulo(ctx *gin.Context) {
	var req struct {
		Titulo    string `json:"titulo"`
		Contenido string `json:"contenido"`
		Autor     string `json:"autor"`
		Categoria string `json:"categoria"`
		Tags      string `json:"tags"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	id := ctx.Param("id")
	var articulo models.Articulo
	if err := a.db.First(&articulo, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Artículo no encontrado")
			return
		}
		utils.Sugar.Errorf("failed to load article %s: %v", id, err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if v := utils.Sanitize(strings.TrimSpace(req.Titulo)); v != "" {
		articulo.Titulo = v
	}
	if v := utils.Sanitize(strings.TrimSpace(req.Contenido)); v != "" {
		articulo.Contenido = v
	}
	if v := utils.Sanitize(strings.TrimSpace(req.Autor)); v != "" {
		articulo.Autor = v
	}
	articulo.Categoria = models.NormalizeCategoria(req.Categoria, articulo.Categoria)
	if strings.TrimSpace(req.Tags) != "" {
		articulo.Tags = models.TagList(utils.SplitTags(req.Tags))
	}
	// Tags loaded from storage were already normalized while scanning, so
	// leaving them untouched re-encodes them in the canonical form.

	if err := a.db.Save(&articulo).Error; err != nil {
		utils.Sugar.Errorf("failed to update article %s: %v", id, err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.InvalidateByPrefix("cache:articulos:list:")
	utils.CacheDelete("cache:articulo:detail:" + id)

	utils.Success(ctx, gin.H{
		"message":  "Artículo actualizado exitosamente",
		"articulo": articulo,
	})
}

// DeleteArticulo removes an article. Its comments are removed by the
// foreign key cascade at the database.
func (a *ArticuloController) DeleteArticulo(ctx *gin.Context) {
	id := ctx.Param("id")

	res := a.db.Delete(&models.Articulo{}, "id = ?", id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete article %s: %v", id, res.Error)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "Artículo no encontrado")
		return
	}

	utils.InvalidateByPrefix("cache:articulos:list:")
	utils.CacheDelete("cache:articulo:detail:" + id)

	utils.Success(ctx, gin.H{"message": "Artículo eliminado exitosamente"})
}
