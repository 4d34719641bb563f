package main

import (
	"context"
	"errors"
	"os"

	"courierquote/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()

	if err := cmd.NewApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadDotEnv copies .env into the environment. The file is optional.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}
