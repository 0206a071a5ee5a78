package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/sales-pulse/pkg/server"
	"github.com/de-tools/sales-pulse/pkg/services/config"
	"github.com/de-tools/sales-pulse/pkg/services/dashboard"
	"github.com/de-tools/sales-pulse/pkg/store/analytics"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Pulse",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.salespulse", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .salespulse profiles file (default is $HOME/.salespulse)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Endpoint profile to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Found the following profiles: %v", profiles)

	endpointCfg, err := registry.GetConfig(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", profile, err)
	}

	svc := dashboard.NewService(analytics.NewClient(endpointCfg))

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Dashboard: svc,
		},
	})

	return webAPI.Start()
}
