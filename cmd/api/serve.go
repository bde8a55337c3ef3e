package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petify-api/internal/adapters/auth/jwtverify"
	"petify-api/internal/adapters/auth/remote"
	"petify-api/internal/adapters/payment/stripe"
	mem "petify-api/internal/adapters/storage/memory"
	"petify-api/internal/adapters/storage/mongodb"
	pg "petify-api/internal/adapters/storage/postgres"
	"petify-api/internal/config"
	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"
	"petify-api/internal/ports/payment"
	"petify-api/internal/ports/storage"
	"petify-api/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(configFile *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*configFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, migrateUp)
		},
	}
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply pending postgres migrations before serving")
	return cmd
}

func bootstrap(configFile string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger, migrateUp bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	stores, err := openStores(ctx, cfg, log, migrateUp)
	if err != nil {
		return err
	}
	defer closeStores(stores, log)

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warn("auth in dev mode: identity taken from header, do not use in production", map[string]any{
			"header": "X-Debug-User-Email",
		})
	}

	provider, err := newPaymentProvider(cfg)
	if err != nil {
		return err
	}

	handler := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		Stores:         stores,
		Payments:       provider,
		Currency:       cfg.Stripe.Currency,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"auth":    cfg.Auth.Mode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStores abre el backend elegido por STORAGE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log logger.Logger, migrateUp bool) (*storage.Stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Options{
			URI:          cfg.Storage.MongoURI,
			Database:     cfg.Storage.MongoDB,
			Transactions: cfg.Storage.MongoTransactions,
		}, log)
		if err != nil {
			return nil, err
		}
		return mongodb.NewStores(client, db, cfg.Storage.MongoTransactions), nil

	case config.DriverPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}
		if migrateUp {
			if err := pg.Migrate(db, pg.Up, log); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return pg.NewStores(db), nil

	default:
		log.Warn("using in-memory storage: data is lost on restart", nil)
		return mem.NewStores(), nil
	}
}

func openPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := pg.Open(cfg.Storage.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func closeStores(s *storage.Stores, log logger.Logger) {
	if s == nil || s.Close == nil {
		return
	}
	if err := s.Close(); err != nil {
		log.Warn("closing storage", map[string]any{"err": err})
	}
}

// newVerifier devuelve nil en modo dev.
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch cfg.Auth.Mode {
	case config.AuthJWT:
		v, err := jwtverify.New(jwtverify.Config{
			Secret:       cfg.Auth.JWTSecret,
			PublicKeyPEM: cfg.Auth.JWTPublicKey,
			Issuer:       cfg.Auth.JWTIssuer,
			Audience:     cfg.Auth.JWTAudience,
		})
		if err != nil {
			return nil, fmt.Errorf("jwt verifier: %w", err)
		}
		return v, nil

	case config.AuthRemote:
		client, err := remote.NewClient(remote.Config{
			BaseURL: cfg.Auth.IdentityURL,
			APIKey:  cfg.Auth.IdentityAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("identity client: %w", err)
		}
		return remote.NewVerifier(client), nil

	default:
		return nil, nil
	}
}

// newPaymentProvider devuelve nil (interfaz nil, no puntero nil) sin STRIPE_SECRET_KEY.
func newPaymentProvider(cfg *config.Config) (payment.IntentProvider, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, nil
	}
	c, err := stripe.NewClient(stripe.Config{SecretKey: cfg.Stripe.SecretKey})
	if err != nil {
		return nil, fmt.Errorf("stripe client: %w", err)
	}
	return c, nil
}
