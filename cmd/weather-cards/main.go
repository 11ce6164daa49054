package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-cards/config"
	_ "weather-cards/docs"
	v1 "weather-cards/internal/controllers/http/v1"
	"weather-cards/internal/render"
	"weather-cards/internal/repositories"
	"weather-cards/internal/services/cards"
	"weather-cards/pkg/httpserver"
	"weather-cards/pkg/logger"
	"weather-cards/pkg/observe"
)

// @title Weather Cards API
// @version 1.0.0
// @description Renders OpenWeatherMap current weather and daily forecast cards for the cities selected in a host visualization.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Cards
// @tag.description Weather card rendering
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		panic(fmt.Sprintf("cannot load config: %v", err))
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Log.SentryDSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Log.SentryDSN, cnf.IsDevelopment())
		if err != nil {
			panic(fmt.Sprintf("cannot init sentry: %v", err))
		}
		writers = append(writers, hook)
	}

	l, err := logger.NewLogger(cnf.App.Name, cnf.App.Env, cnf.Log.Level, writers...)
	if err != nil {
		panic(fmt.Sprintf("cannot init logger: %v", err))
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
	}, l)

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err})
	}

	service := cards.NewCardService(repo, l, cnf.Weather.IconBaseURL, cnf.Cards.Limit)

	v1.NewRouter(
		app,
		service,
		render.NewRenderer(),
		cnf.App.Name,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"version":  cnf.App.Version,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
