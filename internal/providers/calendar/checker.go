package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	fetchTimeout = 15 * time.Second
)

// Checker fetches one calendar page and tests its markup for at least one
// bookable slot. The availability predicate is a single CSS selector: the
// page counts as available iff the selector matches anything.
type Checker struct {
	client   *http.Client
	pageURL  string
	selector string
}

func NewChecker(client *http.Client, pageURL, selector string) *Checker {
	return &Checker{client: client, pageURL: pageURL, selector: selector}
}

func (c *Checker) Page() string {
	return c.pageURL
}

func (c *Checker) Check(ctx context.Context) (bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return false, fmt.Errorf("parse page: %w", err)
	}

	return doc.Find(c.selector).Length() > 0, nil
}
