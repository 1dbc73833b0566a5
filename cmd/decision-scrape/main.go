package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lfaria/juriscan/internal/scraper"
	"github.com/lfaria/juriscan/internal/store"
)

func main() {
	dbFlag := flag.String("db", "", "path to SQLite database file (overrides JURISCAN_DB env var)")
	urlsFile := flag.String("urls", "", "file with one decision URL per line (default: read URLs from stdin)")
	selector := flag.String("selector", "body", "CSS selector holding the decision text")
	delay := flag.Duration("delay", 2*time.Second, "pause between pages")
	flag.Parse()

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("JURISCAN_DB")
	}
	if dbPath == "" {
		dbPath = "./data/juriscan.db"
	}

	urls, err := readURLs(*urlsFile)
	if err != nil {
		log.Fatalf("read urls: %v", err)
	}
	if len(urls) == 0 {
		log.Fatal("no URLs to fetch")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store (%s): %v", dbPath, err)
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sc := scraper.New(scraper.Config{Selector: *selector, Delay: *delay})

	results, err := sc.FetchAll(ctx, urls)
	if err != nil && ctx.Err() != nil {
		log.Printf("interrupted after %d of %d pages", len(results), len(urls))
	} else if err != nil {
		log.Fatalf("fetch: %v", err)
	}

	stored := 0
	byID := make(map[string]string, len(results))
	for _, res := range results {
		if res.Err != nil {
			log.Printf("skip %s: %v", res.URL, res.Err)
			continue
		}
		if prev, dup := byID[res.Document.ID]; dup {
			log.Printf("skip %s: same process as %s", res.URL, prev)
			continue
		}
		byID[res.Document.ID] = res.URL
		if err := st.PutDocument(res.Document, res.URL); err != nil {
			log.Fatalf("store %s: %v", res.Document.ID, err)
		}
		stored++
		log.Printf("stored document %s (%d bytes)", res.Document.ID, len(res.Document.Text))
	}
	log.Printf("done: %d of %d pages stored", stored, len(urls))
}

func readURLs(path string) ([]string, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var urls []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, sc.Err()
}
