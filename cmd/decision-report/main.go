package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lfaria/juriscan/internal/report"
	"github.com/lfaria/juriscan/internal/store"
)

func main() {
	dbFlag := flag.String("db", "", "path to SQLite database file (overrides JURISCAN_DB env var)")
	docID := flag.String("document", "", "document ID to report on")
	outputPath := flag.String("output", "", "path to write markdown (defaults to stdout)")
	htmlPath := flag.String("html", "", "optional path to write the HTML report")
	pdfPath := flag.String("pdf", "", "optional path to write the PDF report (needs Chromium)")
	flag.Parse()

	if *docID == "" {
		log.Fatal("missing required -document")
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

	sum, err := st.GetSummary(*docID)
	if err != nil {
		log.Fatalf("load summary for %s: %v", *docID, err)
	}

	markdown := report.BuildMarkdown(sum)
	if err := writeMarkdown(*outputPath, markdown); err != nil {
		log.Fatalf("write markdown: %v", err)
	}

	if *htmlPath != "" {
		htmlDoc, err := report.RenderHTML(markdown)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(htmlDoc), 0o644); err != nil {
			log.Fatalf("write html: %v", err)
		}
	}

	if *pdfPath != "" {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		pdf, err := report.NewPDFRenderer().Render(ctx, markdown)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	}
}

func writeMarkdown(outputPath, markdown string) error {
	if outputPath == "" {
		_, err := fmt.Print(markdown)
		return err
	}
	return os.WriteFile(outputPath, []byte(markdown), 0o644)
}
