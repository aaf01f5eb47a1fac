package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/telhawk-systems/larkrelay/internal/httputil"
	"github.com/telhawk-systems/larkrelay/internal/logging"
	"github.com/telhawk-systems/larkrelay/internal/metrics"
	"github.com/telhawk-systems/larkrelay/internal/ratelimit"
	"github.com/telhawk-systems/larkrelay/internal/service"
	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

// WebhookHandler authenticates, parses, and relays inbound Linear events.
// Each exit is terminal: 405 wrong method, 429 rate limited, 400 bad body,
// 401 bad signature, 200 for everything accepted — including events that
// are skipped or whose downstream delivery fails.
type WebhookHandler struct {
	service      *service.RelayService
	secret       string
	limiter      ratelimit.RateLimiter
	maxBodyBytes int64
	logger       *logging.Logger
}

func NewWebhookHandler(svc *service.RelayService, secret string, limiter ratelimit.RateLimiter, maxBodyBytes int64) *WebhookHandler {
	if limiter == nil {
		limiter = &ratelimit.NoOpRateLimiter{}
	}
	return &WebhookHandler{
		service:      svc,
		secret:       secret,
		limiter:      limiter,
		maxBodyBytes: maxBodyBytes,
		logger:       logging.Default().With(logging.Service("webhook")),
	}
}

func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	clientIP := httputil.GetClientIP(r)

	allowed, err := h.limiter.Allow(ctx, clientIP)
	if err != nil {
		// Rate limiting is a protection, not a dependency: fail open.
		h.logger.WarnContext(ctx, "rate limiter unavailable", logging.Error(err))
		allowed = true
	}
	if !allowed {
		h.logger.WarnContext(ctx, "rate limit exceeded", logging.IP(clientIP))
		h.respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read request body", logging.IP(clientIP), logging.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	metrics.WebhookBytesTotal.Add(float64(len(body)))

	// Signature check runs on the raw bytes, before any parsing.
	signature := r.Header.Get(linear.SignatureHeader)
	if signature == "" {
		h.logger.WarnContext(ctx, "missing linear-signature header", logging.IP(clientIP))
		h.respondError(w, http.StatusUnauthorized, "missing signature")
		return
	}
	if !linear.VerifySignature(h.secret, body, signature) {
		h.logger.WarnContext(ctx, "invalid webhook signature", logging.IP(clientIP))
		h.respondError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	evt, err := linear.Parse(body)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to parse payload", logging.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	result := h.service.Process(ctx, evt)
	if result.Outcome == service.OutcomeSkipped {
		h.respond(w, http.StatusOK, map[string]string{"status": "skipped"})
		return
	}

	// Delivered or delivery failed: the event was accepted either way.
	h.respond(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// Health is the unauthenticated liveness probe.
func (h *WebhookHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *WebhookHandler) respond(w http.ResponseWriter, status int, data interface{}) {
	metrics.WebhookRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	httputil.WriteJSON(w, status, data)
}

func (h *WebhookHandler) respondError(w http.ResponseWriter, status int, message string) {
	metrics.WebhookRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	httputil.WriteError(w, status, message)
}
