package main

import (
	"os"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/routes"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
