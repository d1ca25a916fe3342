// Package web exposes the reformatting pipeline over HTTP. It is a thin
// adapter: all tabular logic lives in the tablefit package, and this layer
// only negotiates bodies, validates parameters, rate-limits clients, and
// maps empty pipeline results to 400 responses.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tablefit/tablefit"
)

// MinMaxWidth is the smallest accepted maxWidth query value. Anything
// narrower cannot hold even a two-column table.
const MinMaxWidth = 20

// Options configures the handler. The zero value is usable: the default
// width budget applies and rate limiting is disabled.
type Options struct {
	// MaxWidth is the default width budget when the request carries no
	// maxWidth query parameter.
	MaxWidth int

	// RatePerSecond caps requests per client address on /format.
	// Zero disables limiting.
	RatePerSecond float64

	// RateBurst is the token bucket size per client. Only meaningful when
	// RatePerSecond is set; defaults to 1.
	RateBurst int

	// Logger receives one record per request. Defaults to slog.Default().
	Logger *slog.Logger
}

// Handler serves the reformatting API.
type Handler struct {
	maxWidth int
	limiter  *clientLimiter
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewHandler creates a handler serving POST /format and GET /healthz.
func NewHandler(opts Options) *Handler {
	h := &Handler{
		maxWidth: opts.MaxWidth,
		logger:   opts.Logger,
	}
	if h.maxWidth <= 0 {
		h.maxWidth = tablefit.DefaultMaxWidth
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if opts.RatePerSecond > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		h.limiter = newClientLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/format", h.handleFormat)
	mux.HandleFunc("/healthz", h.handleHealth)
	h.mux = mux
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

func (h *Handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if h.limiter != nil && !h.limiter.allow(clientHost(r)) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	maxWidth := h.maxWidth
	if v := r.URL.Query().Get("maxWidth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < MinMaxWidth {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("maxWidth must be an integer >= %d", MinMaxWidth))
			return
		}
		maxWidth = n
	}

	text, err := readDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "no input data")
		return
	}

	grid := tablefit.Parse(text)
	if len(grid) == 0 {
		writeError(w, http.StatusBadRequest, "input is not recognizable tabular data")
		return
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: maxWidth})
	if out == "" {
		writeError(w, http.StatusBadRequest, "input is not recognizable tabular data")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, out)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// readDocument extracts the input text from the request body: the raw body
// for plain text, or the data/text field of a JSON object.
func readDocument(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return string(body), nil
	}
	var payload struct {
		Data string `json:"data"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("invalid JSON body: %v", err)
	}
	if payload.Data != "" {
		return payload.Data, nil
	}
	return payload.Text, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func clientHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
