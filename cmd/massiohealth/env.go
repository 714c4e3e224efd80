package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFiles are read in order; earlier files win because godotenv never
// overrides a variable that is already set.
var dotEnvFiles = []string{".env.local", ".env"}

// loadDotEnv loads environment variables from the dotenv files that exist.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	for _, name := range dotEnvFiles {
		err := godotenv.Load(name)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
