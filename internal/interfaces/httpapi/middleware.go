package httpapi

import (
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/usecase"
	lru "github.com/hashicorp/golang-lru/v2"
	corslib "github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const rateLimitedMessage = "Muitas requisições, tente novamente em instantes"

// statusRecorder keeps the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.InfoContext(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "fut-data-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz", "/docs", "/openapi.yaml":
		return false
	default:
		return true
	}
}

// CORS allows requests without an Origin and requests from a listed origin,
// with credentials. Any other origin is rejected with 403.
func CORS(allowedOrigins []string, logger *logging.Logger, next http.Handler) http.Handler {
	allowed := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if candidate := strings.TrimSpace(origin); candidate != "" {
			allowed = append(allowed, candidate)
		}
	}

	headers := corslib.New(corslib.Options{
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(allowed, origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           600,
	}).Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.CORS")
		defer span.End()

		origin := r.Header.Get("Origin")
		if origin != "" && !slices.Contains(allowed, origin) {
			writeError(ctx, w, logger, usecase.Forbidden("CORS bloqueado para origem: "+origin))
			return
		}

		headers.ServeHTTP(w, r.WithContext(ctx))
	})
}

// maxTrackedClients bounds the per-IP buckets kept in memory.
const maxTrackedClients = 4096

// ipLimiter is a token bucket per client IP. Buckets live in an LRU so idle
// clients are dropped once maxClients is reached.
type ipLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newIPLimiter(requestsPerWindow int, window time.Duration, maxClients int) *ipLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if maxClients <= 0 {
		maxClients = maxTrackedClients
	}
	limiters, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		panic(fmt.Sprintf("httpapi: build rate limiter lru: %v", err))
	}
	rps := float64(requestsPerWindow) / window.Seconds()
	return &ipLimiter{
		limiters: limiters,
		rate:     rate.Limit(rps),
		burst:    max(1, requestsPerWindow/2),
	}
}

func (l *ipLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok := l.limiters.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.rate, l.burst)
	l.limiters.Add(ip, limiter)
	return limiter
}

// RateLimit rejects clients that exceed requestsPerWindow with 429.
func RateLimit(requestsPerWindow int, window time.Duration, logger *logging.Logger, next http.Handler) http.Handler {
	limiter := newIPLimiter(requestsPerWindow, window, maxTrackedClients)
	retryAfter := strconv.Itoa(max(1, int(window.Seconds())))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RateLimit")
		defer span.End()

		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if ip == "" {
			ip = r.RemoteAddr
		}

		if !limiter.getLimiter(ip).Allow() {
			logger.WarnContext(ctx, "rate limited", "remote_ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", retryAfter)
			writeJSON(ctx, w, http.StatusTooManyRequests, errorBody{Error: rateLimitedMessage})
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
