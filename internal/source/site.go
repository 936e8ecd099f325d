package source

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/xhy51/wordfreq/internal/logger"
)

// DefaultCrawlRate is the page fetch rate used when Site.Rate is zero.
const DefaultCrawlRate = 2.0

// Site crawls pages on the same host as URL breadth-first and concatenates
// their visible text.
type Site struct {
	URL      string
	MaxPages int
	Rate     float64 // pages per second
	Client   *http.Client

	// OnPage, if set, is called after every page attempt.
	OnPage func(u string, err error)
}

// Text crawls up to MaxPages pages. Failing to fetch the first page is fatal;
// later failures are skipped.
func (s *Site) Text(ctx context.Context) (string, error) {
	pages, err := s.Crawl(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

func (s *Site) String() string { return "site:" + s.URL }

// Crawl returns the text of each visited page in visiting order.
func (s *Site) Crawl(ctx context.Context) ([]string, error) {
	limit := s.MaxPages
	if limit <= 0 {
		limit = 1
	}
	r := s.Rate
	if r <= 0 {
		r = DefaultCrawlRate
	}
	limiter := rate.NewLimiter(rate.Limit(r), 1)

	startURL, err := url.Parse(s.URL)
	if err != nil {
		return nil, err
	}
	host := startURL.Host

	visited := make(map[string]bool)
	queue := []string{s.URL}
	var texts []string

	for len(queue) > 0 && len(visited) < limit {
		// FIFO queue, so the crawl is breadth-first
		cur := queue[0]
		queue = queue[1:]

		if visited[cur] {
			continue
		}
		visited[cur] = true

		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		body, err := Download(ctx, s.Client, cur)
		if s.OnPage != nil {
			s.OnPage(cur, err)
		}
		if err != nil {
			if len(texts) == 0 && cur == s.URL {
				return nil, err
			}
			logger.Warn("skipping %s: %v", cur, err)
			continue
		}

		text, hrefs := Extract(body)
		texts = append(texts, text)
		logger.Debug("crawled %s (%d links)", cur, len(hrefs))

		for _, h := range hrefs {
			abs := CleanHref(cur, h)
			if abs == "" {
				continue
			}
			u, err := url.Parse(abs)
			if err != nil || u.Host != host {
				continue
			}
			if !visited[abs] {
				queue = append(queue, abs)
			}
		}
	}
	return texts, nil
}
