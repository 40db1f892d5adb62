package commands

import (
	"io"

	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/dispatch"
	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/touch"
	"github.com/evtap/evtap/utils"
)

// RunRequest carries the resolved options for the main gesture loop
type RunRequest struct {
	DevicePath     string
	RulesPath      string
	Grab           bool
	CooldownFrames int
}

// RunResult summarizes a finished run
type RunResult struct {
	Device string `json:"device"`
	Rules  int    `json:"rules"`
	Frames uint64 `json:"frames"`
	Fired  int    `json:"fired"`
}

// RunCommand loads the gesture rules, opens the touch device and pumps
// events until the stream ends.
func RunCommand(req RunRequest) *CommandResponse {
	rules, err := config.LoadRules(req.RulesPath)
	if err != nil {
		return NewErrorResponse(err)
	}

	device, err := touch.OpenDevice(req.DevicePath, req.Grab)
	if err != nil {
		return NewErrorResponse(err)
	}
	defer device.Release()
	if registry := GetRegistry(); registry != nil {
		registry.Register(device)
	}

	engine := gesture.NewEngine(rules, dispatch.NewShellDispatcher(), req.CooldownFrames)

	utils.Info("watching %s with %d rule(s)", req.DevicePath, len(rules))
	frames := PumpEvents(device, touch.NewTracker(), engine.OnFrame)

	return NewSuccessResponse(RunResult{
		Device: req.DevicePath,
		Rules:  len(rules),
		Frames: frames,
		Fired:  len(engine.Events()),
	})
}

// PumpEvents feeds raw events through the tracker and hands each completed
// frame's finger count to onFrame. It returns the number of frames seen once
// the stream ends; read errors end the stream rather than aborting.
func PumpEvents(src io.Reader, tracker *touch.Tracker, onFrame func(int)) uint64 {
	reader := touch.NewEventReader(src)
	var frames uint64

	for {
		ev, err := reader.ReadEvent()
		if err != nil {
			if err != io.EOF {
				utils.Warn("event stream error: %v", err)
			}
			return frames
		}

		if count, frameEnd := tracker.ProcessEvent(ev); frameEnd {
			frames++
			onFrame(count)
		}
	}
}
