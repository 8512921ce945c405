// NASA Data Explorer is a self-hosted web dashboard over NASA's open data
// APIs: Mars rover photos, near earth objects, archived InSight Mars
// weather and EPIC Earth imagery.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adhok/NASA-Data-Visualization-App/internal/cache"
	"github.com/adhok/NASA-Data-Visualization-App/internal/github"
	"github.com/adhok/NASA-Data-Visualization-App/internal/web"
	webassets "github.com/adhok/NASA-Data-Visualization-App/web"
)

const (
	appVersion  = "1.0.0"
	githubOwner = "adhok"
	githubRepo  = "NASA-Data-Visualization-App"
)

// defined flags
var (
	levelFlag    logLevelFlag
	addrFlag     = flag.String("addr", ":8080", "Address to listen on")
	debugFlag    = flag.Bool("debug", false, "Show additional debug information")
	logFileFlag  = flag.Bool("logfile", false, "Write logs to a rotated file instead of the console")
	showDirsFlag = flag.Bool("show-dirs", false, "Show directories where user data is stored")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	ad := newAppDirs()
	if *showDirsFlag {
		fmt.Printf("Logs: %s\n", ad.log)
		return
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}

	memCache := cache.New()
	defer memCache.Close()

	srv, err := web.New(webassets.Content, http.DefaultClient, memCache, appVersion, *debugFlag)
	if err != nil {
		log.Fatal(err)
	}

	// One shot release check for the footer download hint.
	go func() {
		v, err := github.AvailableUpdate(githubOwner, githubRepo, appVersion)
		if err != nil {
			slog.Error("fetch latest github version for download hint", "err", err)
			return
		}
		if !v.IsRemoteNewer {
			return
		}
		slog.Info("newer release available", "local", v.Local, "latest", v.Latest)
		srv.SetUpdateHint(v)
	}()

	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           srv.Handler(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "addr", *addrFlag, "version", appVersion)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	slog.Info("server stopped")
}
