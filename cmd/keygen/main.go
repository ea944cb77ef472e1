// Command keygen prints a fresh base64-encoded 32-byte key suitable for
// ENCRYPTION_KEY_32B_BASE64.
package main

import (
	"fmt"
	"log"

	"github.com/martiny880/ooo-dashboard/internal/vault"
)

func main() {
	key, err := vault.GenerateKey()
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}
	fmt.Println(key)
}
