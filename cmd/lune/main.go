package main

import (
	"log"

	"github.com/MrSnakeDoc/lune/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ lune failed to start: %v", err)
	}
}
