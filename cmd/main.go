package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/palonegro-conectado/server/config"
	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/routes"
)

func main() {
	// .env es opcional; en despliegue todo llega por el entorno.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("base de datos: %v", err)
	}
	log.Info("Conectado a PostgreSQL y esquema migrado")

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalf("proxies: %v", err)
	}

	routes.SetupRoutes(r, db, cfg, log)

	log.Infof("Servidor escuchando en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("servidor: %v", err)
	}
}
