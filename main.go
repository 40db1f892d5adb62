package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/evtap/evtap/cli"
	"github.com/evtap/evtap/commands"
	"github.com/evtap/evtap/touch"
)

func main() {
	// track open devices so grabs are released on shutdown
	registry := touch.NewWatcherRegistry()
	commands.SetRegistry(registry)

	// setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute()
	}()

	// wait for command completion or signal
	select {
	case <-sigChan:
		// ungrab and close devices on signal
		registry.ReleaseAll()
		os.Exit(0)
	case err := <-done:
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
