package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pardomauro/goblog/models"
	"github.com/pardomauro/goblog/utils"
)

// ComentarioController manages comments scoped to their parent article.
type ComentarioController struct {
	db *gorm.DB
}

// NewComentarioController creates a new ComentarioController instance.
func NewComentarioController(db *gorm.DB) *ComentarioController {
	return &ComentarioController{db: db}
}

// ListComentarios returns all comments of one article, newest first.
// A missing article simply yields an empty list.
func (c *ComentarioController) ListComentarios(ctx *gin.Context) {
	articuloID := ctx.Param("articulo_id")

	var comentarios []models.Comentario
	if err := c.db.Where("articulo_id = ?", articuloID).Order("created_at DESC").Find(&comentarios).Error; err != nil {
		utils.Sugar.Errorf("failed to list comments for article %s: %v", articuloID, err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Success(ctx, gin.H{"comentarios": comentarios})
}

// CreateComentario creates a comment. The referenced article must exist.
func (c *ComentarioController) CreateComentario(ctx *gin.Context) {
	var req struct {
		ArticuloID uint   `json:"articulo_id"`
		Nombre     string `json:"nombre"`
		Comentario string `json:"comentario"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	nombre := utils.Sanitize(strings.TrimSpace(req.Nombre))
	texto := utils.Sanitize(strings.TrimSpace(req.Comentario))
	if req.ArticuloID == 0 || nombre == "" || texto == "" {
		utils.Error(ctx, http.StatusBadRequest, "Artículo ID, nombre y comentario son requeridos")
		return
	}

	// Existence probe and insert run as two statements; the FK constraint
	// backstops the race with a concurrent article delete.
	var articulo models.Articulo
	if err := c.db.Select("id").First(&articulo, req.ArticuloID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, "Artículo no encontrado")
			return
		}
		utils.Sugar.Errorf("failed to load article %d: %v", req.ArticuloID, err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	comentario := models.Comentario{
		ArticuloID: req.ArticuloID,
		Nombre:     nombre,
		Comentario: texto,
	}
	if err := c.db.Create(&comentario).Error; err != nil {
		utils.Sugar.Errorf("failed to create comment: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.Created(ctx, gin.H{
		"message":    "Comentario creado exitosamente",
		"comentario": comentario,
	})
}

// DeleteComentario removes a single comment.
func (c *ComentarioController) DeleteComentario(ctx *gin.Context) {
	id := ctx.Param("id")

	res := c.db.Delete(&models.Comentario{}, "id = ?", id)
	if res.Error != nil {
		utils.Sugar.Errorf("failed to delete comment %s: %v", id, res.Error)
		utils.Error(ctx, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "Comentario no encontrado")
		return
	}

	utils.Success(ctx, gin.H{"message": "Comentario eliminado exitosamente"})
}
