// main is the entry point of the user-registration API server.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Connect to (and set up) the SQLite database
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/user-registration --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/user-registration
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/user-registration/internal/config"
	"github.com/aanand-mishra/user-registration/internal/http/handlers/user"
	"github.com/aanand-mishra/user-registration/internal/storage/sqlite"
)

func main() {
	// MustLoad reads the YAML config and exits if anything is wrong.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting user-registration api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// sqlite.New opens the SQLite file and creates the users table. The
	// rest of the code only sees the storage.Storage interface, so
	// swapping the backend later means changing this one line.
	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// Route table:
	//   POST   /api/users        → create a new user (client-minted id)
	//   GET    /api/users        → list all users
	//   GET    /api/users/{id}   → get one user by id
	//   PUT    /api/users/{id}   → replace (or insert) a user
	//   DELETE /api/users/{id}   → delete a user
	//
	// Handler factories receive the storage once at registration and
	// return the actual per-request handler.
	router := http.NewServeMux()

	router.HandleFunc("POST /api/users", user.New(storage))
	router.HandleFunc("GET /api/users", user.GetList(storage))
	router.HandleFunc("GET /api/users/{id}", user.GetByID(storage))
	router.HandleFunc("PUT /api/users/{id}", user.Update(storage))
	router.HandleFunc("DELETE /api/users/{id}", user.Delete(storage))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and main
	// stays free to wait for the shutdown signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected result of Shutdown, not a fault.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// Give in-flight requests five seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text at DEBUG level in dev, JSON for
// prod/staging where logs get shipped to an aggregator.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
