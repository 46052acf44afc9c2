package membership

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/squadplay/squad-engine/internal/adapter"
)

// Config holds the membership service client configuration
type Config struct {
	BaseURL  string
	Token    string
	CacheTTL time.Duration
}

// memberCountResponse is the roster service response shape
type memberCountResponse struct {
	Count int `json:"count"`
}

type cachedCount struct {
	count     int
	fetchedAt time.Time
}

type httpMembership struct {
	cfg   Config
	http  adapter.HTTPClient
	clock adapter.Clock

	mu    sync.Mutex
	cache map[string]cachedCount
}

// NewHTTPMembership creates a membership client backed by the roster
// service's HTTP API. Counts are cached briefly; a slightly stale count only
// shifts the vote threshold by the members who joined or left inside the
// cache window.
func NewHTTPMembership(cfg Config, httpClient adapter.HTTPClient, clock adapter.Clock) Membership {
	return &httpMembership{
		cfg:   cfg,
		http:  httpClient,
		clock: clock,
		cache: make(map[string]cachedCount),
	}
}

// MemberCount returns the number of members in the squad
func (m *httpMembership) MemberCount(ctx context.Context, squadID string) (int, error) {
	now := m.clock.Now()

	m.mu.Lock()
	if cached, ok := m.cache[squadID]; ok && now.Sub(cached.fetchedAt) < m.cfg.CacheTTL {
		m.mu.Unlock()
		return cached.count, nil
	}
	m.mu.Unlock()

	endpoint := fmt.Sprintf("%s/v1/squads/%s/member-count", m.cfg.BaseURL, url.PathEscape(squadID))

	headers := map[string]string{}
	if m.cfg.Token != "" {
		headers["Authorization"] = "Bearer " + m.cfg.Token
	}

	var resp memberCountResponse
	if err := m.http.GetWithHeaders(ctx, endpoint, headers, &resp); err != nil {
		return 0, fmt.Errorf("failed to fetch member count: %w", err)
	}

	if resp.Count < 0 {
		return 0, fmt.Errorf("invalid member count %d for squad %s", resp.Count, squadID)
	}

	m.mu.Lock()
	m.cache[squadID] = cachedCount{count: resp.Count, fetchedAt: now}
	m.mu.Unlock()

	return resp.Count, nil
}
