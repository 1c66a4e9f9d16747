package main

import (
	"fmt"
	"log"

	"github.com/shinyuna/nuber-eats-back/configs"
	"github.com/shinyuna/nuber-eats-back/middlewares"
	"github.com/shinyuna/nuber-eats-back/pubsub"
	"github.com/shinyuna/nuber-eats-back/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("open database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedCategories(db); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// one bus for the whole process, injected everywhere it is needed
	bus := pubsub.New()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, bus)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
