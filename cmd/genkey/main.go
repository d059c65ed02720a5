package main

import (
	"fmt"
	"log"

	"court_records_go/services"
)

// Prints a fresh base64 key for the DATA_ENCRYPTION_KEY environment
// variable.
func main() {
	key, err := services.GenerateEncryptionKey()
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}

	fmt.Printf("DATA_ENCRYPTION_KEY=%s\n", key)
}
