// Command main runs the database seeder for Constella.
package main

import (
	"flag"
	"log"

	"constella/internal/config"
	"constella/internal/database"
	"constella/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numMoments := flag.Int("moments", 150, "Number of moments to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d moments, clean=%v\n", *numUsers, *numMoments, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumMoments:  *numMoments,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Every seed user has the password: password123")
}
