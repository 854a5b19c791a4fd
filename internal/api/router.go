// Package api assembles the HTTP surface of the service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ponloe/postmesh-core/internal/posts"
	"github.com/Ponloe/postmesh-core/internal/users"
)

// NewRouter wires every route against the given database handle.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})

	uc := users.NewController(users.NewStore(db))
	r.GET("/users", uc.List)
	r.POST("/user", uc.Create)
	r.GET("/user/:id", uc.Get)
	r.DELETE("/user/:id", uc.Delete)

	pc := posts.NewController(posts.NewStore(db))
	r.GET("/posts", pc.List)
	r.POST("/post", pc.Create)
	r.GET("/post/:id", pc.Get)
	r.PUT("/post/:id", pc.Update)
	r.DELETE("/post/:id", pc.Delete)

	return r
}
