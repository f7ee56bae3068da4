// Command portfolio-server serves the page copy and accepts contact submissions
package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/portfolio-quest/config"
	"github.com/lixenwraith/portfolio-quest/contact"
	"github.com/lixenwraith/portfolio-quest/content"
	"github.com/lixenwraith/portfolio-quest/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	gin.SetMode(cfg.GinMode)

	library, err := content.Load()
	if err != nil {
		log.Fatalf("content: %v", err)
	}

	store, err := contact.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("contact store: %v", err)
	}
	defer store.Close()

	r := newRouter(library, store, status.NewRegistry())
	log.Printf("listening on :%s (db %s)", cfg.Port, cfg.DBPath)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Printf("server: %v", err)
	}
}
