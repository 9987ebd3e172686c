package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/infrastructure/devops"
	"hrmslite.com/hrmslite/web/handlers"
)

func main() {
	cfg, err := devops.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DSN == "" {
		log.Fatal("DSN is not set; the server cannot start without a database")
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConnection)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	r := gin.Default()

	if len(cfg.CorsOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CorsOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		r.Use(cors.New(corsConfig))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		handlers.RegisterEmployeeRoutes(api, dm)
		handlers.RegisterAttendanceRoutes(api, dm)
	}

	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")

	r.Run("0.0.0.0:" + cfg.Port)
}
