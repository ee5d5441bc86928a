package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designopt/calculator"
	"designopt/model"
)

func request(t *testing.T, typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return model.Msg{Type: typ, Content: string(data)}
}

func TestHubEvaluate(t *testing.T) {
	cfg := calculator.DefaultConfig()
	h := NewHub(cfg)

	reply := h.handle(context.Background(), request(t, model.MsgEvaluate, model.EvaluateReq{
		Model: calculator.NameLinkage,
		X:     []float64{95, 260, 120},
	}))
	require.Equal(t, model.MsgResult, reply.Type, reply.Content)

	var r model.Result
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &r))
	assert.InDelta(t, 96.153122433126, r.Objectives[0], 1e-9)
}

func TestHubEvaluateHeatLoad(t *testing.T) {
	cfg := calculator.DefaultConfig()
	h := NewHub(cfg)
	c, err := calculator.NewCalculator(calculator.NameDualHX18, cfg)
	require.NoError(t, err)
	x := calculator.Midpoint(c)
	load := 1000.0

	reply := h.handle(context.Background(), request(t, model.MsgEvaluate, model.EvaluateReq{
		Model:    calculator.NameDualHX18,
		X:        x,
		HeatLoad: &load,
	}))
	require.Equal(t, model.MsgResult, reply.Type, reply.Content)
	var r model.Result
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &r))
	assert.InDelta(t, -r.Objectives[1]-load, r.Constraints[2], 1e-6)

	// 单目标模型不接受热负荷
	reply = h.handle(context.Background(), request(t, model.MsgEvaluate, model.EvaluateReq{
		Model:    calculator.NameLinkage,
		X:        []float64{95, 260, 120},
		HeatLoad: &load,
	}))
	assert.Equal(t, model.MsgError, reply.Type)
}

func TestHubErrors(t *testing.T) {
	h := NewHub(calculator.DefaultConfig())
	ctx := context.Background()

	for _, msg := range []model.Msg{
		{Type: "start"},
		{Type: model.MsgEvaluate, Content: "{"},
		request(t, model.MsgEvaluate, model.EvaluateReq{Model: "six-bar", X: []float64{1}}),
		request(t, model.MsgEvaluate, model.EvaluateReq{Model: calculator.NameLinkage, X: []float64{95, 260}}),
		request(t, model.MsgEvaluate, model.EvaluateReq{Model: calculator.NameLinkage, X: []float64{95, 260, 1e6}}),
		{Type: model.MsgBounds, Content: "six-bar"},
		request(t, model.MsgOptimize, model.OptimizeReq{Model: "six-bar"}),
	} {
		reply := h.handle(ctx, msg)
		assert.Equal(t, model.MsgError, reply.Type, "%+v", msg)
		assert.NotEmpty(t, reply.Content)
	}
}

func TestHubModelsAndBounds(t *testing.T) {
	h := NewHub(calculator.DefaultConfig())
	ctx := context.Background()

	reply := h.handle(ctx, model.Msg{Type: model.MsgModels})
	require.Equal(t, model.MsgModels, reply.Type)
	var infos []model.ModelInfo
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &infos))
	require.Len(t, infos, 4)
	for i, name := range calculator.Names() {
		assert.Equal(t, name, infos[i].Name)
	}

	reply = h.handle(ctx, model.Msg{Type: model.MsgBounds, Content: calculator.NameDualHX11})
	require.Equal(t, model.MsgBounds, reply.Type)
	var bounds []model.Bound
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &bounds))
	assert.Len(t, bounds, 11)
}

func TestHubOptimizeSampleLimit(t *testing.T) {
	cfg := calculator.DefaultConfig()
	h := NewHub(cfg)
	ctx := context.Background()

	for _, samples := range []int{-1, cfg.MaxSamples + 1, 1 << 60} {
		reply := h.handle(ctx, request(t, model.MsgOptimize, model.OptimizeReq{
			Model:   calculator.NameLinkage,
			Samples: samples,
		}))
		assert.Equal(t, model.MsgError, reply.Type, "samples=%d", samples)
		assert.Contains(t, reply.Content, calculator.ErrInvalidInput.Error())
	}
}

func TestHubOptimizeCanceled(t *testing.T) {
	h := NewHub(calculator.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply := h.handle(ctx, request(t, model.MsgOptimize, model.OptimizeReq{
		Model:   calculator.NameLinkage,
		Samples: 100,
	}))
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, context.Canceled.Error())
}

func TestHubOptimize(t *testing.T) {
	h := NewHub(calculator.DefaultConfig())
	reply := h.handle(context.Background(), request(t, model.MsgOptimize, model.OptimizeReq{
		Model:   calculator.NameSingleHX,
		Samples: 100,
	}))
	require.Equal(t, model.MsgPareto, reply.Type, reply.Content)

	var points []model.ParetoPoint
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &points))
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.Len(t, p.Variables, 3)
		assert.Len(t, p.Objectives, 3)
		assert.Len(t, p.Constraints, 1)
	}
}
