package gesture

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/evtap/evtap/utils"
)

// DefaultCooldownFrames is the number of frame boundaries that must elapse
// after a fire before the same finger count may fire again.
const DefaultCooldownFrames = 30

// historySize bounds the retained fire-event history.
const historySize = 128

// Dispatcher launches a gesture's command. Implementations must return
// promptly; the engine calls Dispatch from the event read loop.
type Dispatcher interface {
	Dispatch(command string) error
}

// FireEvent records one dispatched gesture.
type FireEvent struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Fingers int       `json:"fingers"`
	Command string    `json:"command"`
	At      time.Time `json:"at"`
}

// Engine matches per-frame finger counts against tap rules and debounces
// firing. Firing state is keyed by finger count, not by rule: two rules for
// the same count share one fired flag and one cooldown bucket, so at most the
// first of them fires. All state is instance-scoped, so engines can coexist.
type Engine struct {
	rules          []Rule
	dispatcher     Dispatcher
	cooldownFrames int

	fired    map[int]bool
	cooldown map[int]int

	history  *lru.Cache[string, FireEvent]
	listener func(FireEvent)
}

// NewEngine creates an engine for a static rule list. cooldownFrames <= 0
// selects DefaultCooldownFrames.
func NewEngine(rules []Rule, dispatcher Dispatcher, cooldownFrames int) *Engine {
	if cooldownFrames <= 0 {
		cooldownFrames = DefaultCooldownFrames
	}

	// lru.New only fails for a non-positive size
	history, _ := lru.New[string, FireEvent](historySize)

	return &Engine{
		rules:          rules,
		dispatcher:     dispatcher,
		cooldownFrames: cooldownFrames,
		fired:          make(map[int]bool),
		cooldown:       make(map[int]int),
		history:        history,
	}
}

// SetListener registers a callback invoked after every dispatch, e.g. to
// stream fire events to websocket clients. The callback runs on the event
// loop and must not block.
func (e *Engine) SetListener(fn func(FireEvent)) {
	e.listener = fn
}

// OnFrame consumes the authoritative finger count for one completed frame.
// Per frame: every nonzero cooldown ticks down once, a zero count re-arms
// all fired flags, then tap rules matching the count fire unless their
// bucket is cooling down or already fired.
func (e *Engine) OnFrame(fingerCount int) {
	for count, remaining := range e.cooldown {
		if remaining > 0 {
			e.cooldown[count] = remaining - 1
		}
	}

	if fingerCount == 0 {
		for count := range e.fired {
			delete(e.fired, count)
		}
		return
	}

	for _, rule := range e.rules {
		if rule.Kind != KindTap || rule.Fingers != fingerCount {
			continue
		}
		if e.cooldown[fingerCount] > 0 || e.fired[fingerCount] {
			continue
		}
		e.fire(rule)
	}
}

func (e *Engine) fire(rule Rule) {
	if err := e.dispatcher.Dispatch(rule.Command); err != nil {
		// a failed dispatch never aborts frame processing
		utils.Warn("failed to dispatch %q: %v", rule.Command, err)
	}

	e.fired[rule.Fingers] = true
	e.cooldown[rule.Fingers] = e.cooldownFrames

	event := FireEvent{
		ID:      uuid.NewString(),
		Kind:    rule.Kind,
		Fingers: rule.Fingers,
		Command: rule.Command,
		At:      time.Now(),
	}
	e.history.Add(event.ID, event)
	if e.listener != nil {
		e.listener(event)
	}
}

// Events returns the retained fire events, oldest first. The history cache is
// internally locked, so this is safe to call from outside the event loop.
func (e *Engine) Events() []FireEvent {
	return e.history.Values()
}
