package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv applies the .env found in the working directory or the nearest
// ancestor holding go.mod. Variables already in the environment are kept.
// It reports os.ErrNotExist when there is no such file.
func LoadEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	path, ok := findEnvFile(dir)
	if !ok {
		return os.ErrNotExist
	}
	return godotenv.Load(path)
}

func findEnvFile(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// IsMissing reports whether err from LoadEnv only means there was no .env.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
