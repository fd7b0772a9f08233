package main

import (
	"github.com/pardomauro/goblog/config"
	"github.com/pardomauro/goblog/models"
	"github.com/pardomauro/goblog/routes"
	"github.com/pardomauro/goblog/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Articulo must migrate before Comentario so the cascade FK can be created.
	db := config.InitDatabase(&models.Usuario{}, &models.Articulo{}, &models.Comentario{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
