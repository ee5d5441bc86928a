package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"designopt/calculator"
	"designopt/model"
	"designopt/optimizer"
)

// loadEvaluator is implemented by models whose heat load can be set per call.
type loadEvaluator interface {
	EvaluateLoad(x []float64, heatLoad float64) model.Result
}

// Hub serves one websocket connection: requests arrive on msg in order and
// every request gets exactly one reply.
type Hub struct {
	calculators map[string]calculator.Calculator
	cfg         *calculator.Config
	conn        *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(cfg *calculator.Config) *Hub {
	h := &Hub{
		calculators: make(map[string]calculator.Calculator),
		cfg:         cfg,
		msg:         make(chan model.Msg, 10),
		reply:       make(chan model.Msg, 10),
	}
	for _, c := range calculator.NewCalculators(cfg) {
		h.calculators[c.Name()] = c
	}
	return h
}

func (h *Hub) handleRequest(ctx context.Context) {
	defer close(h.reply)
	for {
		select {
		case msg, ok := <-h.msg:
			if !ok {
				return
			}
			h.reply <- h.handle(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithField("type", reply.Type).Error("回复发送失败: ", err)
		}
	}
}

func (h *Hub) handle(ctx context.Context, msg model.Msg) model.Msg {
	var (
		reply model.Msg
		err   error
	)
	switch msg.Type {
	case model.MsgModels:
		reply, err = h.models()
	case model.MsgBounds:
		reply, err = h.bounds(msg.Content)
	case model.MsgEvaluate:
		reply, err = h.evaluate(msg.Content)
	case model.MsgOptimize:
		reply, err = h.optimize(ctx, msg.Content)
	default:
		err = fmt.Errorf("no such type %q", msg.Type)
	}
	if err != nil {
		log.WithField("type", msg.Type).Warn(err)
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return reply
}

func (h *Hub) lookup(name string) (calculator.Calculator, error) {
	c, ok := h.calculators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", calculator.ErrUnknownModel, name)
	}
	return c, nil
}

func (h *Hub) models() (model.Msg, error) {
	infos := make([]model.ModelInfo, 0, len(h.calculators))
	for _, name := range calculator.Names() {
		infos = append(infos, calculator.Info(h.calculators[name]))
	}
	return encode(model.MsgModels, infos)
}

func (h *Hub) bounds(name string) (model.Msg, error) {
	c, err := h.lookup(name)
	if err != nil {
		return model.Msg{}, err
	}
	return encode(model.MsgBounds, c.Bounds())
}

func (h *Hub) evaluate(content string) (model.Msg, error) {
	var req model.EvaluateReq
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return model.Msg{}, fmt.Errorf("%w: %v", calculator.ErrInvalidInput, err)
	}
	c, err := h.lookup(req.Model)
	if err != nil {
		return model.Msg{}, err
	}
	if err := calculator.Validate(c, req.X); err != nil {
		return model.Msg{}, err
	}

	if req.HeatLoad == nil {
		return encode(model.MsgResult, c.Evaluate(req.X))
	}
	le, ok := c.(loadEvaluator)
	if !ok {
		return model.Msg{}, fmt.Errorf("%w: %s does not take a heat load", calculator.ErrInvalidInput, c.Name())
	}
	return encode(model.MsgResult, le.EvaluateLoad(req.X, *req.HeatLoad))
}

func (h *Hub) optimize(ctx context.Context, content string) (model.Msg, error) {
	var req model.OptimizeReq
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return model.Msg{}, fmt.Errorf("%w: %v", calculator.ErrInvalidInput, err)
	}
	c, err := h.lookup(req.Model)
	if err != nil {
		return model.Msg{}, err
	}
	samples := req.Samples
	if samples == 0 {
		samples = h.cfg.Samples
	}
	if err := h.cfg.CheckSamples(samples); err != nil {
		return model.Msg{}, err
	}
	front, err := optimizer.NewSampler(samples).Optimize(ctx, c)
	if err != nil {
		return model.Msg{}, err
	}
	return encode(model.MsgPareto, front.Points())
}

func encode(typ string, v interface{}) (model.Msg, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return model.Msg{}, err
	}
	return model.Msg{Type: typ, Content: string(data)}, nil
}
