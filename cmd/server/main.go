package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Colby-williams/hackathon-2025/api"
	"github.com/Colby-williams/hackathon-2025/customer"
	"github.com/Colby-williams/hackathon-2025/internal/o11y"
	"github.com/Colby-williams/hackathon-2025/rental"
	"github.com/Colby-williams/hackathon-2025/session"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

var cli = struct {
	Port           int    `name:"port" env:"PORT" default:"8080"`
	GoogleMapsKey  string `name:"google-maps-key" env:"GOOGLE_MAPS_KEY"`
	MaxRideMinutes int    `name:"max-ride-minutes" env:"MAX_RIDE_MINUTES" default:"240"`

	// Credentials are demo plaintext; running without this flag requires a
	// real verifier, which this build does not ship.
	PlaintextCredentials bool `name:"plaintext-credentials" env:"PLAINTEXT_CREDENTIALS" default:"true" negatable:""`

	MetricsUsername string `name:"metrics-username" env:"METRICS_USERNAME"`
	MetricsPassword string `name:"metrics-password" env:"METRICS_PASSWORD"`
}{}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	kong.Parse(&cli)

	if !cli.PlaintextCredentials {
		return errors.New("no credential backend configured: this demo only ships the plaintext verifier")
	}
	if cli.GoogleMapsKey == "" {
		log.Println("NOTE: GOOGLE_MAPS_KEY is not set; /config.js will serve an empty key")
	}

	obs, cleanup, err := o11y.Setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	vr := vehicle.NewRegistry(vehicle.Seed())
	cr := customer.NewRepository(customer.Seed())
	sessions := session.NewStore()
	engine := rental.NewEngine(vr, cr, time.Duration(cli.MaxRideMinutes)*time.Minute)

	a := api.New(api.Config{
		Vehicles:        vr,
		Customers:       cr,
		Sessions:        sessions,
		Engine:          engine,
		Obs:             obs,
		GoogleMapsKey:   cli.GoogleMapsKey,
		MetricsUsername: cli.MetricsUsername,
		MetricsPassword: cli.MetricsPassword,
	})

	serv := http.Server{
		Addr:    fmt.Sprintf(":%d", cli.Port),
		Handler: a.Router(),
	}

	go func() {
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return serv.Shutdown(ctx)
}
