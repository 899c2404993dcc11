// Package handlers is the HTTP API layer: it validates requests, translates
// store absence into 404s and shapes JSON responses. All state lives in the
// injected store.
package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zakihadj/souq/internal/mykafka"
)

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// publishEvent is best-effort: a broken or absent broker never fails the
// request, it only logs.
func publishEvent(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
