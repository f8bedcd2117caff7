package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/config"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	rtr, err := router.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize the router: %v", err)
	}
	rtr.Router.Static("/static", "./public")

	log.Printf("Server listening on http://localhost:%s/", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, rtr.Router); err != nil {
		log.Fatalf("There was an error with the http server: %v", err)
	}
}
