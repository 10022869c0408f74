package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-dating-service/internal/config"
	datinghttp "github.com/pribylovaa/go-dating-service/internal/http"
	"github.com/pribylovaa/go-dating-service/internal/http/middleware"
	"github.com/pribylovaa/go-dating-service/internal/identity"
	"github.com/pribylovaa/go-dating-service/internal/service"
	"github.com/pribylovaa/go-dating-service/internal/storage"
	"github.com/pribylovaa/go-dating-service/internal/storage/minio"
	"github.com/pribylovaa/go-dating-service/internal/storage/postgres"
	"github.com/pribylovaa/go-dating-service/internal/storage/s3"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// .env нужен только при локальной разработке.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting dating-service", "env", cfg.Env, "s3_provider", cfg.S3.Provider)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	repo, err := postgres.New(rootCtx, cfg.Postgres.URL)
	if err != nil {
		log.Error("postgres_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer repo.Close()

	objects, err := newObjectStorage(rootCtx, cfg.S3)
	if err != nil {
		log.Error("object_storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("storages_initialized", slog.String("bucket", cfg.S3.Bucket))

	svc := service.New(repo, objects, cfg)

	apiHandler := datinghttp.NewRouter(svc, datinghttp.Options{
		Logger:        log,
		Timeout:       cfg.Timeouts.Service,
		UploadTimeout: cfg.Timeouts.Upload,
		Parser:        identity.NewParser(cfg.Auth),
		Metrics:       middleware.NewHTTPMetrics(prometheus.DefaultRegisterer),
		MaxPhotoBytes: cfg.Photo.MaxSizeBytes,
	})

	var ready atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		if err := repo.Ping(r.Context()); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(true)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// newObjectStorage выбирает реализацию бакета по s3.provider.
func newObjectStorage(ctx context.Context, cfg config.S3Config) (storage.ObjectStorage, error) {
	if cfg.Provider == config.ProviderAWS {
		objects, err := s3.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return objects, nil
	}

	objects, err := minio.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return objects, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
