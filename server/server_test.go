package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designopt/calculator"
	"designopt/model"
)

func TestServeWs(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{}, calculator.DefaultConfig())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 回复按请求顺序返回
	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgModels}))
	require.NoError(t, conn.WriteJSON(request(t, model.MsgEvaluate, model.EvaluateReq{
		Model: calculator.NameLinkage,
		X:     []float64{20, 20, 400},
	})))
	require.NoError(t, conn.WriteJSON(model.Msg{Type: "stop"}))

	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MsgModels, reply.Type)

	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MsgResult, reply.Type)
	assert.JSONEq(t, `{"objectives":[1000],"constraints":[]}`, reply.Content)

	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MsgError, reply.Type)
}

func TestServeWsDisconnectStopsOptimize(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{}, calculator.DefaultConfig())
	finished := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Handler().ServeHTTP(w, r)
		close(finished)
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(request(t, model.MsgOptimize, model.OptimizeReq{
		Model:   calculator.NameDualHX18,
		Samples: calculator.DefaultConfig().MaxSamples,
	})))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, conn.Close())

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("handler still running after the client went away")
	}
}
