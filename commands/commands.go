package commands

import (
	"github.com/evtap/evtap/touch"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// watcherRegistry holds the registry for open-device cleanup tracking.
// It is set once at application startup via SetRegistry; commands register
// the devices they open so grabs are released on SIGINT/SIGTERM.
var watcherRegistry *touch.WatcherRegistry

// SetRegistry sets the global watcher registry for cleanup tracking.
// This should be called once at application startup.
func SetRegistry(registry *touch.WatcherRegistry) {
	watcherRegistry = registry
}

// GetRegistry returns the current watcher registry.
// Returns nil if SetRegistry has not been called yet.
func GetRegistry() *touch.WatcherRegistry {
	return watcherRegistry
}
