package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-feed-reader/internal/apiclient"
	"github.com/MKhiriev/go-feed-reader/internal/app"
	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/session"
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

	log := logger.NewClientLogger("go-feed-reader")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = apiclient.Init(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("init api client")
	}

	caps := app.SharedCapabilities(apiclient.Shared(), session.New(), cfg.Feed, log)
	reader := app.NewApp(caps, info, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = reader.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("reader run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, f := range info.Fields() {
		fmt.Printf("Build %s: %s\n", strings.ToLower(f.Label), f.Value)
	}
}
