package commands

import (
	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/dispatch"
	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/server"
	"github.com/evtap/evtap/touch"
	"github.com/evtap/evtap/utils"
)

// ServeRequest carries the options for running the gesture loop alongside
// the JSON-RPC status server
type ServeRequest struct {
	RunRequest
	Listen     string
	EnableCORS bool
}

// ServeCommand runs the gesture loop with a JSON-RPC server next to it. The
// event loop stays single-threaded; the server sees it only through the
// per-frame snapshot and the engine's locked event history.
func ServeCommand(req ServeRequest) error {
	rules, err := config.LoadRules(req.RulesPath)
	if err != nil {
		return err
	}

	device, err := touch.OpenDevice(req.DevicePath, req.Grab)
	if err != nil {
		return err
	}
	defer device.Release()
	if registry := GetRegistry(); registry != nil {
		registry.Register(device)
	}

	dispatcher := dispatch.NewShellDispatcher()
	engine := gesture.NewEngine(rules, dispatcher, req.CooldownFrames)

	srv := server.New(server.Config{
		Addr:       req.Listen,
		EnableCORS: req.EnableCORS,
		Device:     req.DevicePath,
		Rules:      rules,
		Engine:     engine,
		Dispatcher: dispatcher,
	})
	engine.SetListener(srv.Broadcast)

	go func() {
		utils.Info("watching %s with %d rule(s)", req.DevicePath, len(rules))
		PumpEvents(device, touch.NewTracker(), func(count int) {
			engine.OnFrame(count)
			srv.ObserveFrame(count)
		})
		utils.Info("event stream ended, shutting down server")
		srv.Shutdown()
	}()

	return srv.Start()
}
