package server

import (
	"encoding/json"
	"fmt"

	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/utils"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// methodRegistry returns a map of method names to handler functions
func (s *Server) methodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"status":          s.handleStatus,
		"rules":           s.handleRules,
		"events":          s.handleEvents,
		"fire":            s.handleFire,
		"server.shutdown": s.handleShutdown,
	}
}

// Execute dispatches a method call using the registry
func (s *Server) Execute(method string, params json.RawMessage) (interface{}, error) {
	handler, exists := s.methodRegistry()[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// StatusInfo is the payload of the status method
type StatusInfo struct {
	Device  string `json:"device"`
	Rules   int    `json:"rules"`
	Frames  uint64 `json:"frames"`
	Fingers int    `json:"fingers"`
}

func (s *Server) handleStatus(json.RawMessage) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StatusInfo{
		Device:  s.cfg.Device,
		Rules:   len(s.cfg.Rules),
		Frames:  s.frames,
		Fingers: s.activeCount,
	}, nil
}

func (s *Server) handleRules(json.RawMessage) (interface{}, error) {
	return s.cfg.Rules, nil
}

func (s *Server) handleEvents(json.RawMessage) (interface{}, error) {
	if s.cfg.Engine == nil {
		return []gesture.FireEvent{}, nil
	}
	return s.cfg.Engine.Events(), nil
}

// FireParams represents the parameters for the fire method
type FireParams struct {
	Fingers int `json:"fingers"`
}

func (s *Server) handleFire(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: fingers")
	}

	var fireParams FireParams
	if err := json.Unmarshal(params, &fireParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: fingers", err)
	}

	for _, rule := range s.cfg.Rules {
		if rule.Kind != gesture.KindTap || rule.Fingers != fireParams.Fingers {
			continue
		}
		if err := s.cfg.Dispatcher.Dispatch(rule.Command); err != nil {
			return nil, err
		}
		return okResponse, nil
	}

	return nil, fmt.Errorf("no tap rule for %d finger(s)", fireParams.Fingers)
}

func (s *Server) handleShutdown(json.RawMessage) (interface{}, error) {
	utils.Info("shutdown requested")
	// reply to the caller first, then stop serving
	go s.Shutdown()
	return okResponse, nil
}
