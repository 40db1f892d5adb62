package commands

import (
	"github.com/evtap/evtap/touch"
	"github.com/evtap/evtap/utils"
)

// WatchRequest carries the options for the debug watch loop
type WatchRequest struct {
	DevicePath string
	Grab       bool
}

// WatchCommand logs finger counts whenever they change, without dispatching
// any commands. Useful for checking slot behavior of a new touchscreen.
func WatchCommand(req WatchRequest) *CommandResponse {
	device, err := touch.OpenDevice(req.DevicePath, req.Grab)
	if err != nil {
		return NewErrorResponse(err)
	}
	defer device.Release()
	if registry := GetRegistry(); registry != nil {
		registry.Register(device)
	}

	utils.Info("watching %s, press fingers to see counts", req.DevicePath)
	if info, err := device.AbsInfo(touch.AbsMtSlot); err == nil {
		utils.Info("device reports contact slots %d..%d", info.Minimum, info.Maximum)
	}

	tracker := touch.NewTracker()
	lastCount := -1
	frames := PumpEvents(device, tracker, func(count int) {
		if count == lastCount {
			return
		}
		lastCount = count

		utils.Info("%d finger(s) down", count)
		for slot, contact := range tracker.Contacts() {
			utils.Verbose("  slot %d: id=%d x=%d y=%d", slot, contact.TrackingID, contact.X, contact.Y)
		}
	})

	return NewSuccessResponse(RunResult{
		Device: req.DevicePath,
		Frames: frames,
	})
}
