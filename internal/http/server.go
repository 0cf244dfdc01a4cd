// Package http exposes the ledger over a small JSON API. It is a thin
// consumer of the core: every handler parses raw input, calls the store or
// an aggregation, and renders the result.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"bilancio/internal/cache"
	"bilancio/internal/ledger"
	"bilancio/internal/middleware/trace"
	"bilancio/internal/report"
)

// Options tunes the serving surface. Zero values fall back to defaults.
type Options struct {
	RateLimitPerMinute int
	CacheSize          int
	CacheTTL           time.Duration
}

func (o Options) withDefaults() Options {
	if o.RateLimitPerMinute <= 0 {
		o.RateLimitPerMinute = 60
	}
	if o.CacheSize <= 0 {
		o.CacheSize = 100
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = 5 * time.Minute
	}
	return o
}

type Server struct {
	http.Server
	store   *ledger.Store
	limiter *rateLimiter

	// Summary caches keyed "year-month", invalidated on every mutation
	// touching the month.
	balanceCache   *cache.LRUCache[report.MonthSummary]
	breakdownCache *cache.LRUCache[[]report.LabelTotal]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server backed by the given store.
func NewServer(addr string, store *ledger.Store, opts Options) *Server {
	opts = opts.withDefaults()
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		store:            store,
		limiter:          newRateLimiter(opts.RateLimitPerMinute),
		balanceCache:     cache.NewLRUCache[report.MonthSummary](opts.CacheSize, opts.CacheTTL),
		breakdownCache:   cache.NewLRUCache[[]report.LabelTotal](opts.CacheSize, opts.CacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)
	mux.HandleFunc("POST /transactions", s.secured(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions", s.secured(s.handleListTransactions))
	mux.HandleFunc("DELETE /transactions/{id}", s.secured(s.handleDeleteTransaction))
	mux.HandleFunc("POST /transactions/remove-displayed", s.secured(s.handleRemoveDisplayed))
	mux.HandleFunc("GET /summary/balance", s.secured(s.handleBalance))
	mux.HandleFunc("GET /summary/breakdown", s.secured(s.handleBreakdown))

	tr := trace.NewMiddleware(extractClientIP)
	s.Handler = tr.Middleware(mux)

	go s.startCacheCleanup()

	return s
}

// secured adds security headers and applies rate limiting to mutating
// requests.
func (s *Server) secured(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodDelete {
			clientIP := extractClientIP(r)
			if !s.limiter.allow(clientIP) {
				slog.WarnContext(r.Context(), "Rate limit exceeded",
					"client_ip", clientIP, "method", r.Method, "path", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				ErrorResponse(http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later").Write(w)
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

func (s *Server) cacheKey(year, month int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}

// invalidateMonth drops cached summaries for a single month.
func (s *Server) invalidateMonth(year, month int) {
	key := s.cacheKey(year, month)
	s.balanceCache.Delete(key)
	s.breakdownCache.Delete(key)
}

// invalidateAll drops every cached summary. Used after bulk removals,
// which may touch any month.
func (s *Server) invalidateAll() {
	s.balanceCache.Flush()
	s.breakdownCache.Flush()
}

// startCacheCleanup runs periodic cleanup for both summary caches.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cleaned := s.balanceCache.CleanExpired() + s.breakdownCache.CleanExpired()
			if cleaned > 0 {
				slog.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the cleanup goroutines and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.limiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
