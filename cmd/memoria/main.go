package main

import (
	"context"
	"log"
	"os"

	"github.com/memoria-app/memoria/internal/cli"
	"github.com/memoria-app/memoria/internal/config"
	"github.com/memoria-app/memoria/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
