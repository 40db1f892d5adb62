package touch

import (
	"sync"

	"github.com/evtap/evtap/utils"
)

// WatcherRegistry tracks open devices so the signal handler can drop grabs
// and close file handles before exit.
type WatcherRegistry struct {
	mu      sync.Mutex
	devices map[string]*Device
}

// NewWatcherRegistry creates a new registry instance
func NewWatcherRegistry() *WatcherRegistry {
	return &WatcherRegistry{
		devices: make(map[string]*Device),
	}
}

// Register adds a device to the registry for cleanup tracking
func (r *WatcherRegistry) Register(device *Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[device.Path()] = device
}

// ReleaseAll ungrabs and closes every registered device
func (r *WatcherRegistry) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.devices) == 0 {
		return
	}

	for path, device := range r.devices {
		if err := device.Release(); err != nil {
			utils.Verbose("Error releasing device %s: %v", path, err)
		}
	}

	// clear the registry
	r.devices = make(map[string]*Device)
}
