package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/randomtoy/namefortune-go/internal/app"
	"github.com/randomtoy/namefortune-go/internal/domain"
)

const (
	mimeJSON = "application/json; charset=utf-8"
	mimeText = "text/plain; charset=utf-8"

	// ISO 8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"

	msgInvalidBody = "Invalid JSON body"
	msgInvalidName = "Invalid name. Use 2–40 letters and spaces only."
	msgGreeting    = "Hello, World!"

	bodyLimit = "64K"
)

type Handler struct {
	svc              *app.FortuneService
	openAIConfigured bool
}

func NewHandler(svc *app.FortuneService, openAIConfigured bool) *Handler {
	return &Handler{svc: svc, openAIConfigured: openAIConfigured}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/fortune", h.Fortune, h.limitBody(bodyLimit))
	e.GET("/message", h.Message)
	e.GET("/random", h.Random)
}

// Health never exposes the credential itself, only whether one is set.
func (h *Handler) Health(c echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthResponse{OK: true, OpenAIConfigured: h.openAIConfigured})
}

func (h *Handler) Message(c echo.Context) error {
	return writeText(c, http.StatusOK, msgGreeting)
}

func (h *Handler) Random(c echo.Context) error {
	return writeText(c, http.StatusOK, uuid.NewString())
}

func (h *Handler) Fortune(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.mapError(c, fmt.Errorf("%w: %w", domain.ErrInvalidBody, err))
	}

	name, err := requestName(body)
	if err != nil {
		return h.mapError(c, fmt.Errorf("%w: %w", domain.ErrInvalidBody, err))
	}

	f, err := h.svc.Tell(c.Request().Context(), name)
	if err != nil {
		return h.mapError(c, err)
	}

	return writeJSON(c, http.StatusOK, toResponse(f))
}

// limitBody caps request bodies and reports oversized ones as invalid
// bodies rather than echo's plain-text 413.
func (h *Handler) limitBody(limit string) echo.MiddlewareFunc {
	limiter := middleware.BodyLimit(limit)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limiter(next)
		return func(c echo.Context) error {
			err := limited(c)
			var he *echo.HTTPError
			if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
				return h.mapError(c, fmt.Errorf("%w: %w", domain.ErrInvalidBody, err))
			}
			return err
		}
	}
}

func toResponse(f domain.Fortune) FortuneResponse {
	return FortuneResponse{
		FortuneText: f.Text,
		Meta: MetaResp{
			Mocked:    f.Mocked,
			Timestamp: f.CreatedAt.UTC().Format(timestampLayout),
		},
	}
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)
	pb := h.svc.Phrasebook()

	switch {
	case errors.Is(err, domain.ErrInvalidBody):
		return writeJSON(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
	case errors.Is(err, domain.ErrInvalidName):
		return writeJSON(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidName})
	case errors.Is(err, domain.ErrUpstreamLLM):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return writeJSON(c, http.StatusBadGateway, ErrorResponse{Error: pb.Errors.Upstream})
	default:
		slog.Error("fortune generation failed", "request_id", requestID, "error", err)
		return writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: pb.Errors.Generation})
	}
}

func writeJSON(c echo.Context, code int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return c.Blob(code, mimeJSON, b)
}

func writeText(c echo.Context, code int, s string) error {
	return c.Blob(code, mimeText, []byte(s))
}
