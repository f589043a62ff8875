package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"github.com/phoneyourrep/pyr-backend/internal/reps"
	"github.com/phoneyourrep/pyr-backend/internal/seeds"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()
	reps.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeded states")
}
