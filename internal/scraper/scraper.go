// Package scraper fetches decision pages from court portals through headless
// Chromium. Labor-court portals render decision text client-side, so a plain
// HTTP GET returns an empty shell.
package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/lfaria/juriscan/internal/summarizer"
)

// cnjNumberRe matches the CNJ process numbering for labor courts
// (NNNNNNN-DD.AAAA.5.TR.OOOO, judicial segment 5).
var cnjNumberRe = regexp.MustCompile(`\d{7}-\d{2}\.\d{4}\.5\.\d{2}\.\d{4}`)

type Config struct {
	ChromePath string
	Selector   string
	Timeout    time.Duration
	// Delay between consecutive fetches, so batch runs stay polite.
	Delay time.Duration
}

type Scraper struct {
	cfg Config
}

func New(cfg Config) *Scraper {
	if cfg.Selector == "" {
		cfg.Selector = "body"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 2 * time.Second
	}
	if cfg.ChromePath == "" {
		cfg.ChromePath = detectChromePath()
	}
	return &Scraper{cfg: cfg}
}

// Fetch renders one decision page and returns it as a document ready for
// storage. The document ID is the CNJ process number when the URL carries
// one, a URL digest otherwise.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (summarizer.Document, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if s.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ChromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var text string
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(s.cfg.Selector, chromedp.ByQuery),
		chromedp.Text(s.cfg.Selector, &text, chromedp.NodeVisible, chromedp.ByQuery),
	); err != nil {
		return summarizer.Document{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	clean := NormalizeText(text)
	if clean == "" {
		return summarizer.Document{}, fmt.Errorf("fetch %s: page rendered no visible text", pageURL)
	}
	return summarizer.Document{ID: DocumentID(pageURL), Text: clean}, nil
}

// Result pairs one fetched URL with its document or failure.
type Result struct {
	URL      string
	Document summarizer.Document
	Err      error
}

// FetchAll fetches every URL in order, pausing between pages. One broken
// page does not abort the batch; only context cancellation does.
func (s *Scraper) FetchAll(ctx context.Context, urls []string) ([]Result, error) {
	if len(urls) == 0 {
		return nil, errNoURLs
	}
	results := make([]Result, 0, len(urls))
	for i, u := range urls {
		if i > 0 {
			if err := sleepCtx(ctx, s.cfg.Delay); err != nil {
				return results, err
			}
		}
		doc, err := s.Fetch(ctx, u)
		results = append(results, Result{URL: u, Document: doc, Err: err})
	}
	return results, nil
}

// DocumentID derives a stable identifier from the page URL. URLs that embed
// a CNJ process number reuse it verbatim.
func DocumentID(pageURL string) string {
	if num := cnjNumberRe.FindString(pageURL); num != "" {
		return num
	}
	sum := sha256.Sum256([]byte(pageURL))
	return "url-" + hex.EncodeToString(sum[:8])
}

// NormalizeText collapses the whitespace noise rendered pages carry:
// trailing spaces, runs of blank lines, non-breaking spaces.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var errNoURLs = errors.New("no urls to fetch")
