package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jaanmak/internal/api"
	"jaanmak/internal/domain/checkout"
	"jaanmak/internal/media"
	"jaanmak/internal/payments"
	"jaanmak/internal/persist"
	"jaanmak/internal/poller"
	"jaanmak/internal/store"
)

type config struct {
	api          apiConfig
	storage      storageConfig
	payment      paymentConfig
	pollInterval time.Duration
	cloudinary   string
	logLevel     string
}

type apiConfig struct {
	baseURL string
	timeout time.Duration
}

type storageConfig struct {
	driver string
	path   string
}

type paymentConfig struct {
	method    string
	secretKey string
	baseURL   string
}

func envString(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists || val == "" {
		return def
	}
	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid %s, defaulting to %s\n", key, def)
		return def
	}
	return parsed
}

func defaultStoragePath(driver string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	name := persist.Key + ".json"
	if driver == "sqlite" {
		name = persist.Key + ".db"
	}
	return filepath.Join(dir, "jaanmak", name)
}

// loadConfig reads the environment. Every setting has a default so the
// CLI runs without a .env file.
func loadConfig() config {
	driver := envString("STORAGE_DRIVER", "file")
	return config{
		api: apiConfig{
			baseURL: envString("API_BASE_URL", api.DefaultBaseURL),
			timeout: envDuration("HTTP_TIMEOUT", 15*time.Second),
		},
		storage: storageConfig{
			driver: driver,
			path:   envString("STORAGE_PATH", defaultStoragePath(driver)),
		},
		payment: paymentConfig{
			method:    envString("PAYMENT_METHOD", "Paystack"),
			secretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
			baseURL:   os.Getenv("PAYSTACK_BASE_URL"),
		},
		pollInterval: envDuration("POLL_INTERVAL", 5*time.Second),
		cloudinary:   os.Getenv("CLOUDINARY_URL"),
		logLevel:     envString("LOG_LEVEL", "info"),
	}
}

// NewLogger creates a new zap logger with color. Logs go to stderr so
// command output on stdout stays clean.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core).Sugar(), nil
}

type application struct {
	config   config
	logger   *zap.SugaredLogger
	client   *api.Client
	store    *store.Store
	checkout *checkout.Flow
	media    media.Uploader
	pollers  *poller.Registry
	out      io.Writer
}

func main() {
	os.Exit(start(os.Args[1:]))
}

// start wires the application and runs one command, returning the exit
// code once every deferred cleanup has run.
func start(args []string) int {
	// A missing .env is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	cfg := loadConfig()

	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		return 1
	}
	defer logger.Sync()

	storage, err := persist.Open(cfg.storage.driver, cfg.storage.path)
	if err != nil {
		logger.Errorw("failed to open storage", "driver", cfg.storage.driver, "path", cfg.storage.path, "error", err)
		return 1
	}
	if c, ok := storage.(io.Closer); ok {
		defer c.Close()
	}

	client := api.New(cfg.api.baseURL, cfg.api.timeout, logger)
	st := store.New(client, storage, logger)

	manager := payments.NewPaymentManager()
	var gateway payments.Gateway
	if cfg.payment.secretKey != "" {
		manager.RegisterGateway(cfg.payment.method, payments.NewPaystackAdapter(
			cfg.payment.secretKey,
			cfg.payment.baseURL,
			printAuthorizationURL(os.Stdout),
			logger,
		))
		gateway = payments.GatewayFunc(func(ctx context.Context, req payments.ChargeRequest) (payments.ChargeResult, error) {
			return manager.Charge(ctx, cfg.payment.method, req)
		})
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		client:   client,
		store:    st,
		checkout: checkout.NewFlow(st, client, gateway, cfg.payment.method, logger),
		pollers:  poller.NewRegistry(),
		out:      os.Stdout,
	}

	if cfg.cloudinary != "" {
		uploader, err := media.NewCloudinary(cfg.cloudinary)
		if err != nil {
			logger.Errorw("failed to initialize cloudinary", "error", err)
			return 1
		}
		app.media = uploader
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.run(ctx, args)
	app.pollers.StopAll()
	st.Wait()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func printAuthorizationURL(w io.Writer) payments.OpenFunc {
	return func(_ context.Context, authURL string) error {
		_, err := fmt.Fprintf(w, "Complete your payment at:\n  %s\nWaiting for confirmation...\n", strings.TrimSpace(authURL))
		return err
	}
}
