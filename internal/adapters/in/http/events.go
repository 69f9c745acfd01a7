package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/broadcast"

	"github.com/labstack/echo/v4"
)

// keepAliveInterval is how often the stream emits an SSE comment so proxies
// do not cut an idle connection.
const keepAliveInterval = 30 * time.Second

// EventPayload is the JSON data of one SSE message. OrderID is present only
// for order-scoped events.
type EventPayload struct {
	Scope   string `json:"scope"`
	OrderID *int64 `json:"order_id,omitempty"`
}

// StreamEvents handles GET /api/v1/events - a server-sent-event stream of
// refresh hints. Clients reload the affected view when a hint arrives; the
// stream carries no order state itself.
func (s *Server) StreamEvents(ctx echo.Context) error {
	events, cancel := s.hub.Subscribe()
	defer cancel()

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-store")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	done := ctx.Request().Context().Done()

	for {
		select {
		case <-done:
			return nil

		case <-keepAlive.C:
			if _, err := fmt.Fprint(response, ": keep-alive\n\n"); err != nil {
				return nil
			}
			response.Flush()

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if err := writeEvent(response, event); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

func writeEvent(response *echo.Response, event broadcast.Event) error {
	payload := EventPayload{Scope: string(event.Scope)}
	if event.Scope == broadcast.ScopeOrder {
		orderID := event.OrderID
		payload.OrderID = &orderID
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(response, "event: %s\ndata: %s\n\n", event.Scope, data)

	return err
}
