package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lfaria/juriscan/internal/httpapi"
	"github.com/lfaria/juriscan/internal/store"
)

func main() {
	dbFlag := flag.String("db", "", "path to SQLite database file (overrides JURISCAN_DB env var)")
	flag.Parse()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("JURISCAN_DB")
	}
	if dbPath == "" {
		dbPath = "./data/juriscan.db"
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store (%s): %v", dbPath, err)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(st),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("decision-api listening on %s (db=%s)", addr, dbPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("decision-api stopped")
}
