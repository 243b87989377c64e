package eshop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	americasPageSize = 200
	europePageSize   = 1000
	// priceBatchSize is the maximum number of ids the price endpoint accepts.
	priceBatchSize = 50
)

// Client reads catalogs and prices from the public storefront APIs.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxRetries  int
	americasURL string
	europeURL   string
	priceURL    string
	locale      string
}

// NewClient creates a storefront API client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		limiter:     rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries:  cfg.MaxRetries,
		americasURL: cfg.AmericasURL,
		europeURL:   cfg.EuropeURL,
		priceURL:    cfg.PriceURL,
		locale:      locale,
	}
}

// FetchGames returns the full catalog of a region, following pagination.
func (c *Client) FetchGames(ctx context.Context, region Region) ([]RawGame, error) {
	switch region {
	case RegionAmericas:
		return c.fetchAmericas(ctx)
	case RegionEurope:
		return c.fetchEurope(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
}

func (c *Client) fetchAmericas(ctx context.Context) ([]RawGame, error) {
	var games []RawGame
	for offset := 0; ; offset += americasPageSize {
		q := url.Values{}
		q.Set("system", "switch")
		q.Set("sort", "title")
		q.Set("direction", "asc")
		q.Set("shop", "ncom")
		q.Set("limit", strconv.Itoa(americasPageSize))
		q.Set("offset", strconv.Itoa(offset))

		var res americasResponse
		if err := c.get(ctx, c.americasURL+"?"+q.Encode(), &res); err != nil {
			return nil, fmt.Errorf("failed to fetch americas games at offset %d: %w", offset, err)
		}
		for _, g := range res.Games.Game {
			games = append(games, g.raw())
		}

		if len(res.Games.Game) == 0 || res.Filter.Total <= offset+americasPageSize {
			return games, nil
		}
	}
}

func (c *Client) fetchEurope(ctx context.Context) ([]RawGame, error) {
	var games []RawGame
	for start := 0; ; start += europePageSize {
		q := url.Values{}
		q.Set("fl", "*")
		q.Set("q", "*")
		q.Set("rows", strconv.Itoa(europePageSize))
		q.Set("start", strconv.Itoa(start))
		q.Set("sort", "sorting_title asc")
		q.Set("wt", "json")
		q.Set("fq", "type:GAME AND system_type:nintendoswitch* AND product_code_txt:*")

		var res europeResponse
		if err := c.get(ctx, c.europeURL+"?"+q.Encode(), &res); err != nil {
			return nil, fmt.Errorf("failed to fetch europe games at start %d: %w", start, err)
		}
		for _, g := range res.Response.Docs {
			games = append(games, g.raw())
		}

		if len(res.Response.Docs) == 0 || res.Response.NumFound <= start+europePageSize {
			return games, nil
		}
	}
}

// FetchPrices looks prices up in batches of the endpoint's maximum id count.
// The region does not change the endpoint; nsuids are region specific already.
func (c *Client) FetchPrices(ctx context.Context, region Region, country string, nsuids []string) ([]Price, error) {
	if region != RegionAmericas && region != RegionEurope {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}

	var prices []Price
	for start := 0; start < len(nsuids); start += priceBatchSize {
		end := min(start+priceBatchSize, len(nsuids))

		q := url.Values{}
		q.Set("country", country)
		q.Set("lang", c.locale)
		q.Set("ids", strings.Join(nsuids[start:end], ","))

		var res priceResponse
		if err := c.get(ctx, c.priceURL+"?"+q.Encode(), &res); err != nil {
			return nil, fmt.Errorf("failed to fetch %s prices: %w", country, err)
		}
		prices = append(prices, res.Prices...)
	}
	return prices, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retry, err := c.do(ctx, url, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	if c.maxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

// do performs one request and reports whether a failure is worth retrying.
func (c *Client) do(ctx context.Context, url string, target any) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return false, nil
}
