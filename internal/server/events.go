package server

import (
	"io"
	"sync"

	"github.com/gin-gonic/gin"

	"shoplist/internal/list"
)

// eventHub fans list change notifications out to connected SSE clients so
// the frontend can re-render without polling. Slow clients drop events
// rather than block a mutation.
type eventHub struct {
	mu      sync.Mutex
	clients map[chan list.Stats]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{clients: make(map[chan list.Stats]struct{})}
}

func (h *eventHub) subscribe() chan list.Stats {
	ch := make(chan list.Stats, 8)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *eventHub) unsubscribe(ch chan list.Stats) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *eventHub) broadcast(stats list.Stats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- stats:
		default:
		}
	}
}

// handleEvents streams a "change" event with the fresh stats after every
// mutation or reload.
func (s *Server) handleEvents(c *gin.Context) {
	ch := s.events.subscribe()
	defer s.events.unsubscribe(ch)

	c.Stream(func(w io.Writer) bool {
		select {
		case stats, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", stats)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
