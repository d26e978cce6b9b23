// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// VerificationToken, when set, must match the token field of every
	// payload. Requests with any other token get 401.
	VerificationToken string

	// OnEvent receives each event_callback. An error answers 500, and
	// Slack retries the delivery. Nil acknowledges events unread.
	OnEvent func(ctx context.Context, callback *EventCallback) error

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Handler answers Events API requests.
type Handler struct {
	verificationToken string
	onEvent           func(context.Context, *EventCallback) error
	logger            *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(config HandlerConfig) *Handler {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		verificationToken: config.VerificationToken,
		onEvent:           config.OnEvent,
		logger:            logger,
	}
}

// Router returns a gin engine serving the handler at path via POST.
func (h *Handler) Router(path string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST(path, h.Handle)
	return router
}

// Handle is the gin handler function.
func (h *Handler) Handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable_body"})
		return
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	if !h.tokenMatches(gjson.GetBytes(body, "token").String()) {
		h.logger.Warn("events request with wrong verification token", "remote", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return
	}

	switch payloadType := gjson.GetBytes(body, "type").String(); payloadType {
	case TypeURLVerification:
		var payload URLVerificationPayload
		if err := json.Unmarshal(body, &payload); err != nil || payload.Challenge == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing_challenge"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"challenge": payload.Challenge})

	case TypeEventCallback:
		var callback EventCallback
		if err := json.Unmarshal(body, &callback); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_event_callback"})
			return
		}
		if h.onEvent != nil {
			if err := h.onEvent(c.Request.Context(), &callback); err != nil {
				h.logger.Error("event handling failed",
					"event_id", callback.EventID,
					"event_type", callback.EventType(),
					"error", err,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "handler_failed"})
				return
			}
		}
		c.Status(http.StatusOK)

	default:
		h.logger.Debug("ignoring events payload", "type", payloadType)
		c.Status(http.StatusOK)
	}
}

func (h *Handler) tokenMatches(token string) bool {
	if h.verificationToken == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.verificationToken)) == 1
}
