package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mehmetcepni/bincard-auth/internal/backendstub"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8080"
	}

	stub := backendstub.New()
	log.Printf("backend stub listening on :%s", port)
	if err := stub.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
