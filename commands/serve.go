package commands

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"designopt/server"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket evaluation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Addr
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			return server.NewServer(addr, upgrader, cfg).Serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from [server] addr)")
	return cmd
}
