package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	zlog "github.com/bluegreyowl/gradebook/pkg/log"

	"github.com/bluegreyowl/gradebook/internal/web"
)

func run() error {
	logger := zlog.InitDev()
	defer zlog.Sync()

	return web.Run(logger)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
