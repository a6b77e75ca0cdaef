package scraper

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	fetchTimeout = 8 * time.Second

	// maxContentChars fits the page comfortably into the model's
	// context window; the insight prompt trims further.
	maxContentChars = 8000

	// Some sites block obvious bots; present a realistic browser.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Cache is an optional read-through page cache in front of live fetches.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type Collector struct {
	cache Cache
	http  *http.Client
}

// NewCollector builds a collector; cache may be nil.
func NewCollector(cache Cache) *Collector {
	return &Collector{
		cache: cache,
		http:  &http.Client{Timeout: fetchTimeout},
	}
}

// Collect fetches a page and reduces it to visible text: scripts, styles,
// navigation and decorative markup stripped, whitespace collapsed, capped
// at maxContentChars. Any failure yields "" — absence of content is a
// judgment for the orchestrator, not an error here.
func (c *Collector) Collect(ctx context.Context, rawURL string) string {
	target := normalizeURL(rawURL)

	if c.cache != nil {
		if text, ok := c.cache.Get(ctx, target); ok {
			return text
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logrus.WithField("url", target).Warnf("scrape request build failed: %v", err)
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithField("url", target).Warnf("scrape failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithField("url", target).Warnf("scrape returned status %d", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logrus.WithField("url", target).Warnf("scrape parse failed: %v", err)
		return ""
	}

	// Remove clutter to reduce token usage downstream.
	doc.Find("script, style, nav, footer, svg").Remove()

	text := truncateRunes(strings.Join(strings.Fields(doc.Find("body").Text()), " "), maxContentChars)

	if text != "" && c.cache != nil {
		c.cache.Set(ctx, target, text)
	}
	return text
}

// truncateRunes caps s at limit bytes without splitting a UTF-8 rune;
// Slovak pages are full of multibyte characters.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func normalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}
