package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"libshelf/internal/book"
	"libshelf/internal/cli"
	"libshelf/internal/config"
	"libshelf/internal/store"
)

func main() {
	loadEnvFiles()

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	repo, err := store.OpenBookJSON(cfg.Store.Path)
	if err != nil {
		if !errors.Is(err, book.ErrCorrupt) {
			log.Fatalf("cannot open store (%s): %v", cfg.Store.Path, err)
		}
		// Recoverable: start from an empty store, but tell the user.
		if !cfg.Output.Quiet {
			log.Printf("warning: %v (starting with an empty store)", err)
		}
	}

	svc := book.NewService(repo)

	if err := cli.NewRoot(svc).Execute(); err != nil {
		os.Exit(1)
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func configPath() string {
	if v := os.Getenv("LIBSHELF_CONFIG"); v != "" {
		return v
	}
	return "libshelf.yaml"
}
