package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cafe-api/config"
	"cafe-api/handlers"
	"cafe-api/repository"
	"cafe-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Println("Failed to close database:", err)
		}
	}()

	cafes := handlers.NewCafeHandler(repository.NewCafeRepository(db), cfg.FormBoolMode)
	router := routes.NewRouter(cfg, cafes)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("Server stopped:", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}
}
