package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pardomauro/goblog/config"
	"github.com/pardomauro/goblog/controllers"
	"github.com/pardomauro/goblog/middleware"
	"github.com/pardomauro/goblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file so request noise stays out of
	// the application log.
	gl, err := utils.NewRollingFileLogger(cfg.GinLogPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Uploaded article images are served statically.
	r.Static("/uploads", "./"+cfg.UploadDir)

	r.GET("/", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"message": "¡Servidor del Blog funcionando!"})
	})
	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	articuloController := controllers.NewArticuloController(db)
	comentarioController := controllers.NewComentarioController(db)
	usuarioController := controllers.NewUsuarioController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")

	// Auth endpoints are rate limited per client IP.
	auth := api.Group("")
	auth.Use(middleware.RateLimit())
	auth.POST("/registro", usuarioController.Registro)
	auth.POST("/login", usuarioController.Login)

	articulos := api.Group("/articulos")
	articulos.GET("", articuloController.ListArticulos)
	articulos.GET("/categorias", articuloController.ListCategorias)
	articulos.GET("/:id", articuloController.GetArticulo)
	articulos.POST("", middleware.AuthRequired(), articuloController.CreateArticulo)
	articulos.PUT("/:id", middleware.AuthRequired(), articuloController.UpdateArticulo)
	articulos.DELETE("/:id", middleware.AuthRequired(), articuloController.DeleteArticulo)

	comentarios := api.Group("/comentarios")
	comentarios.GET("/:articulo_id", comentarioController.ListComentarios)
	comentarios.POST("", comentarioController.CreateComentario)
	comentarios.DELETE("/:id", middleware.AuthRequired(), comentarioController.DeleteComentario)

	// Administrative user CRUD requires a valid session token.
	usuarios := api.Group("/usuarios")
	usuarios.Use(middleware.AuthRequired())
	usuarios.GET("", usuarioController.ListUsuarios)
	usuarios.GET("/:id", usuarioController.GetUsuario)
	usuarios.POST("", usuarioController.CreateUsuario)
	usuarios.PUT("/:id", usuarioController.UpdateUsuario)
	usuarios.DELETE("/:id", usuarioController.DeleteUsuario)

	api.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, "ruta no encontrada")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
