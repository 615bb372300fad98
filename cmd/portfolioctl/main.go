package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/nasarali03/Portfolio/internal/cli"
	"github.com/nasarali03/Portfolio/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	log.SetOutput(os.Stderr)

	ctx := context.Background()
	deps, cleanup, err := cli.NewDeps(ctx, config.Load())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	code, err := cli.Run(ctx, os.Args[1:], deps)
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(code)
}
