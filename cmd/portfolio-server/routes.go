package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/portfolio-quest/contact"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/status"
)

// newRouter wires the page API, the contact endpoint and request counters
func newRouter(library *content.Library, store contact.Saver, stats *status.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), countRequests(stats))

	api := r.Group("/api")
	api.GET("/pages", listPages(library))
	api.GET("/pages/:id", getPage(library))
	api.POST("/contact", contact.Handler(store))

	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Snapshot())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// countRequests tallies responses by route and status class
func countRequests(stats *status.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		stats.Counter(fmt.Sprintf("http %s %s", c.Request.Method, route)).Add(1)
		stats.Counter(fmt.Sprintf("http %dxx", c.Writer.Status()/100)).Add(1)
	}
}

func listPages(library *content.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pages": library.IDs()})
	}
}

func getPage(library *content.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := library.Page(c.Param("id"))
		if errors.Is(err, content.ErrUnknownPage) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
