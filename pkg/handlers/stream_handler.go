package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Karen2677/RisingHKT/pkg/broker"

	"github.com/pocketbase/pocketbase/core"
)

// ChangeStream is the SSE feed of backend table changes. The browser listens
// and refetches the page it is on when a relevant table mutates, which keeps
// the UI eventually consistent without manual refresh.
// GET /api/changes/stream
func (h *SiteHandler) ChangeStream(e *core.RequestEvent) error {
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	changeChan := h.Broker.Subscribe(broker.AllTables)
	defer h.Broker.Unsubscribe(broker.AllTables, changeChan)

	// Initial event so the client knows the stream is live.
	initial := broker.Change{
		Table:     "",
		Action:    "connected",
		Timestamp: time.Now().Unix(),
	}
	payload, _ := json.Marshal(initial)
	fmt.Fprintf(e.Response, "data: %s\n\n", payload)
	e.Response.(http.Flusher).Flush()

	for {
		select {
		case change := <-changeChan:
			payload, err := json.Marshal(change)
			if err != nil {
				continue
			}
			fmt.Fprintf(e.Response, "data: %s\n\n", payload)
			e.Response.(http.Flusher).Flush()

		case <-e.Request.Context().Done():
			// Client disconnected
			return nil
		}
	}
}
