package main

import (
	"fmt"
	"log"
	"os"

	"betx.backend/internal/domain/entities"
	"betx.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

func resolvePassword(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("usage: hash-gen <password>")
	}
	if len(args[0]) < entities.MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", entities.MinPasswordLength)
	}
	return args[0], nil
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password, err := resolvePassword(os.Args[1:])
	if err != nil {
		fatalfFn("%v", err)
		return
	}

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
