// Command trendora is the back-office CLI for the Trendora e-commerce API:
// it authenticates an operator session and manages customers, orders,
// products, staff accounts and store settings.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/core/service"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/api"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/config"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/credstore"
	"github.com/damilolajohn6/trendora-admin/pkg/logger"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
	Commit  = "unknown"
)

// app holds the wired SDK. Built once in the root command's PersistentPreRunE
// so every subcommand sees the same session.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	client    *api.Client
	session   *service.SessionManager
	customers *service.CustomerService
	orders    *service.OrderService
	products  *service.ProductService
	users     *service.UserService
	dashboard *service.DashboardService
	settings  *service.SettingsService
}

var a *app

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trendora",
	Short: "Trendora - e-commerce back-office CLI",
	Long: `Trendora talks to the Trendora admin REST API: log in once and the
session is persisted locally, then manage customers, orders, products,
staff accounts and store settings from the command line.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		a, err = buildApp()
		return err
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("Trendora CLI %s (%s)\n", Version, Commit))

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func buildApp() (*app, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	creds, err := buildCredStore(cfg)
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Options{
		BaseURL:     cfg.APIBaseURL,
		Timeout:     cfg.Timeout,
		Credentials: creds,
		OnAuthRejected: func() {
			log.Warn().Msg("session rejected by server, run `trendora login`")
		},
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("set TRENDORA_API_URL to the admin API base address: %w", err)
	}

	return &app{
		cfg:       cfg,
		log:       log,
		client:    client,
		session:   service.NewSessionManager(client, creds, log),
		customers: service.NewCustomerService(client, log),
		orders:    service.NewOrderService(client, log),
		products:  service.NewProductService(client, log),
		users:     service.NewUserService(client, log),
		dashboard: service.NewDashboardService(client),
		settings:  service.NewSettingsService(client, log),
	}, nil
}

func buildCredStore(cfg *config.Config) (ports.CredentialStore, error) {
	switch cfg.Credentials.Backend {
	case "file", "":
		return credstore.NewFileStore(cfg.Credentials.File), nil
	case "redis":
		client, err := credstore.Connect(context.Background(), credstore.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return credstore.NewRedisStore(client), nil
	case "none":
		return credstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown TOKEN_STORE backend %q", cfg.Credentials.Backend)
	}
}

// requireSession bootstraps from the persisted credential and fails the
// command when no valid session results.
func requireSession(ctx context.Context) error {
	s := a.session.Bootstrap(ctx)
	if !s.Authenticated {
		return fmt.Errorf("not logged in, run `trendora login` first")
	}
	return nil
}
