package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Ponloe/postmesh-core/internal/api"
	"github.com/Ponloe/postmesh-core/internal/config"
	"github.com/Ponloe/postmesh-core/internal/database"
	"github.com/Ponloe/postmesh-core/internal/posts"
	"github.com/Ponloe/postmesh-core/internal/users"
)

func main() {
	cfg := config.Load()

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(db, &users.User{}, &posts.Post{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := api.NewRouter(db)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
