package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"cfdash/internal/devserver"
)

func main() {
	_ = godotenv.Load()

	addr := os.Getenv("CFDASHD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	secret := os.Getenv("CFDASHD_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
	}

	srv := devserver.NewServer(secret)
	if err := srv.SeedUser("Maria Silva", "maria@example.com", "senha12345", "plus", true); err != nil {
		log.Fatalf("seed: %v", err)
	}
	if err := srv.SeedUser("João Souza", "joao@example.com", "senha12345", "", false); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("cfdashd listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
