package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/vadim/neo-insight/internal/app"
	"github.com/vadim/neo-insight/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: environment only)")
	flag.Parse()

	// Load configuration
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(*configPath); err != nil {
			log.Fatalf("failed to load config %s: %v", *configPath, err)
		}
	} else {
		cfg = config.MustLoad()
	}

	ctx := context.Background()

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	// Blocks until SIGINT/SIGTERM
	if err := application.Run(ctx); err != nil {
		log.Printf("application error: %v", err)
		os.Exit(1)
	}
}
