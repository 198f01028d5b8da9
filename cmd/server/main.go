package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/stackpick/internal/buildinfo"
	"github.com/dmitrijs2005/stackpick/internal/server"
	"github.com/dmitrijs2005/stackpick/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
