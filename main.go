package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/configs"
	"github.com/GouravKumar19/slooze/middlewares"
	"github.com/GouravKumar19/slooze/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// demo dataset (countries, users, restaurants, payment methods)
	if err := configs.SeedDemoData(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
