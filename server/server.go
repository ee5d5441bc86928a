package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"designopt/calculator"
	"designopt/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      *calculator.Config
}

func NewServer(addr string, upgrader websocket.Upgrader, cfg *calculator.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		cfg:      cfg,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade: ", err)
		return
	}
	defer conn.Close()
	log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已连接")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	hub := NewHub(s.cfg)
	hub.conn = conn
	done := make(chan struct{})
	go hub.handleRequest(ctx)
	go func() {
		hub.handleResponse()
		close(done)
	}()

LOOP:
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read: ", err)
			}
			break
		}
		select {
		case hub.msg <- msg:
		case <-ctx.Done():
			break LOOP
		}
	}
	// 客户端断开后中止正在进行的计算
	cancel()
	close(hub.msg)
	<-done
	log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已断开")
}

// Handler routes /ws to the evaluation hub.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("评估服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}
