package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-green-pledge/internal/client"
	"github.com/MKhiriev/go-green-pledge/internal/client/cli"
	"github.com/MKhiriev/go-green-pledge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx, client.NewApp, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
