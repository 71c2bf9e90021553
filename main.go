package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"wabiz/config"
	"wabiz/db"
	"wabiz/router"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV (sobrescrevem o config.json)
// =====================
//
// - API_KEY                  (segredo exigido no header X-API-Key)
// - PORT, LOG_PATH, GIN_MODE
// - DATABASE                 (sqlite3 | postgres)
// - DB_HOST, DB_PORT, DB_USER, DB_NAME, DB_PASS
// - AUTOMIGRATE              (true cria/atualiza as tabelas no boot)
//
// =====================

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	cfg := config.Get(*configPath)
	setupLogOutput(cfg.LogPath)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		log.Println("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	log.Printf("listening on :%s", cfg.ApiPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP server error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// setupLogOutput duplica o log padrão (e o do gin) para o arquivo configurado.
func setupLogOutput(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("log dir %s: %v (logging to stderr only)", path, err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("log file %s: %v (logging to stderr only)", path, err)
		return
	}
	w := io.MultiWriter(os.Stderr, f)
	log.SetOutput(w)
	gin.DefaultWriter = w
	gin.DefaultErrorWriter = w
}
