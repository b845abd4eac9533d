package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-companion/internal/domain/conversation"
	"github.com/yanqian/weather-companion/internal/domain/weather"
)

// Handler wires the HTTP transport to the conversation service.
type Handler struct {
	svc    conversation.Service
	assets conversation.AssetResolver
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc conversation.Service, assets conversation.AssetResolver, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		assets: assets,
		logger: logger.With("component", "http.handler"),
	}
}

// StartSession creates an empty chat session. The body is optional.
func (h *Handler) StartSession(c *gin.Context) {
	var req conversation.StartRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
	}

	snap, err := h.svc.Start(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetSession returns the current snapshot of a session.
func (h *Handler) GetSession(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SendMessage runs one chat turn for the submitted city.
func (h *Handler) SendMessage(c *gin.Context) {
	var req conversation.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.svc.Send(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// FunFacts asks for trivia about the session's current city.
func (h *Handler) FunFacts(c *gin.Context) {
	snap, err := h.svc.FunFacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Background resolves the themed image for a status and day part.
func (h *Handler) Background(c *gin.Context) {
	key := weather.SelectBackground(weather.Status(c.Query("status")), weather.DayPart(c.Query("part")))
	url := key
	if h.assets != nil {
		url = h.assets.URL(c.Request.Context(), key)
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
