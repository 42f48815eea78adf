package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/server"
	"github.com/MKhiriev/go-feed-reader/internal/stubapi"
	"github.com/MKhiriev/go-feed-reader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("go-feed-stub")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	handler, err := stubapi.NewHandler(cfg.Stub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stub handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, f := range info.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f.Label), f.Value)
	}
}
