package main

import (
	"github.com/openshelf/library-api/internal/config"
	"github.com/openshelf/library-api/internal/entrypoint"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg)
}
