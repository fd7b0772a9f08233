package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pardomauro/goblog/models"
	"github.com/pardomauro/goblog/utils"
)

// StatsController exposes aggregate counts for the blog.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns article, comment and user totals. Individual count
// failures fall back to 0 instead of failing the whole endpoint.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var articulos, comentarios, usuarios int64

	if err := s.db.Model(&models.Articulo{}).Count(&articulos).Error; err != nil {
		articulos = 0
	}
	if err := s.db.Model(&models.Comentario{}).Count(&comentarios).Error; err != nil {
		comentarios = 0
	}
	if err := s.db.Model(&models.Usuario{}).Count(&usuarios).Error; err != nil {
		usuarios = 0
	}

	utils.Success(ctx, gin.H{
		"articulos":   articulos,
		"comentarios": comentarios,
		"usuarios":    usuarios,
	})
}
