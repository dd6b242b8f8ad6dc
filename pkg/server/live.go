package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/cssonce/cssonce/internal/demo"
	"github.com/cssonce/cssonce/pkg/cssonce"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleLive upgrades to WebSocket and renders components on demand. The
// connection is the tracker's scope: the first render of each component
// type on a connection carries its style block, later renders do not.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	css := s.metrics.KeyedGate(cssonce.NewKeyed())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		name := strings.TrimSpace(string(msg))
		build, ok := demo.Keyed[name]
		if !ok {
			if err := conn.WriteMessage(websocket.TextMessage, []byte("unknown component: "+name)); err != nil {
				return
			}
			continue
		}

		html, err := s.renderer.RenderToString(build(css))
		if err != nil {
			s.logger.Error("live render failed", "component", name, "error", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			return
		}
	}
}
