package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"personstore/internal/config"
	"personstore/internal/generator"
	"personstore/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	count := flag.Int("count", 10, "Number of synthetic person records to insert")
	flag.Parse()

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Seeding %d person records...", *count)

	personRepo := repository.NewPersonRepository(db.DB())
	inserted := 0
	for i := 0; i < *count; i++ {
		person := generator.Person()
		if err := personRepo.Create(person); err != nil {
			log.Printf("Failed to insert person: %v", err)
			continue
		}
		inserted++
	}

	log.Printf("Seed process completed: %d/%d records inserted", inserted, *count)
}
