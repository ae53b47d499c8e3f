package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	intconfig "travelrecords/internal/config"
	router "travelrecords/internal/http"
	"travelrecords/internal/http/handlers"
	"travelrecords/internal/storage"
	"travelrecords/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", intconfig.DefaultFile, "optional YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), intconfig.Usage())
	}
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	env, err := intconfig.LoadEnv(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: env.SlogLevel()}))
	slog.SetDefault(logger)

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	loc, err := env.Location()
	if err != nil {
		logger.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(env.DataDir)
	if err != nil {
		logger.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hd := handlers.New(store, utils.SystemClock(loc), env.APIVersion)
	r := router.NewRouter(env, hd, reg, logger)
	srv := router.Server(env.AppAddr, r)

	go func() {
		logger.Info("server listening",
			"addr", env.AppAddr,
			"data_dir", store.Dir(),
			"api", "/api/"+env.APIVersion,
			"timezone", loc.String(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
