// Package rates keeps the exchange rate table in the store fresh. Rates
// are for display only; nothing converts amounts with them.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
	"github.com/pfdash/backend/internal/store"
	"github.com/rs/zerolog"
)

const (
	defaultInterval = 6 * time.Hour
	maxBodyBytes    = 1 << 20
)

// response is the provider payload, e.g. {"base":"USD","rates":{"EUR":0.92}}.
type response struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Refresher periodically fetches a rate table and saves it.
type Refresher struct {
	store    store.Store
	url      string
	client   *http.Client
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Refresher.
type Option func(*Refresher)

func WithHTTPClient(c *http.Client) Option {
	return func(r *Refresher) { r.client = c }
}

func WithInterval(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Refresher) { r.now = now }
}

func NewRefresher(st store.Store, url string, opts ...Option) *Refresher {
	r := &Refresher{
		store:    st,
		url:      url,
		client:   &http.Client{Timeout: 15 * time.Second},
		interval: defaultInterval,
		now:      time.Now,
		log:      logger.Component("rates"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run refreshes once immediately and then on every tick until ctx ends.
// Failed refreshes are logged and the previous table stays in place.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
			r.log.Warn().Err(err).Str("url", r.url).Msg("exchange rate refresh failed")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Refresh fetches the current table and saves it.
func (r *Refresher) Refresh(ctx context.Context) (*finance.ExchangeRates, error) {
	table, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.store.SaveExchangeRates(ctx, table); err != nil {
		return nil, fmt.Errorf("save exchange rates: %w", err)
	}
	r.log.Info().Str("base", table.Base).Int("currencies", len(table.Rates)).Msg("exchange rates refreshed")
	return table, nil
}

func (r *Refresher) fetch(ctx context.Context) (*finance.ExchangeRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch rates: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	if payload.Base == "" || len(payload.Rates) == 0 {
		return nil, errors.New("decode rates: empty base or rate table")
	}

	base := strings.ToUpper(payload.Base)
	table := &finance.ExchangeRates{
		Base:      base,
		Rates:     make(map[string]float64, len(payload.Rates)+1),
		FetchedAt: r.now().UTC(),
	}
	for code, rate := range payload.Rates {
		if rate <= 0 {
			continue
		}
		table.Rates[strings.ToUpper(code)] = rate
	}
	table.Rates[base] = 1
	return table, nil
}
