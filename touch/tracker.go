package touch

// Contact is one live finger on the screen.
type Contact struct {
	TrackingID int `json:"trackingId"`
	X          int `json:"x"`
	Y          int `json:"y"`
}

// Tracker rebuilds per-frame contact state from a type-B multi-touch event
// stream. The protocol only reports slots whose values changed, so committed
// state carries over between frames, and within a frame every field update
// applies to whichever slot was selected last.
//
// Lifts apply immediately; touch-downs and position updates are staged and
// committed at the sync report. The asymmetry makes a lift plus touch-down
// inside a single frame settle to the correct transient count.
type Tracker struct {
	contacts    map[int]Contact
	active      map[int]struct{}
	currentSlot int

	// staged update for the current slot, committed at the next sync report
	pending       Contact
	pendingActive bool
	hasPending    bool
}

func NewTracker() *Tracker {
	return &Tracker{
		contacts: make(map[int]Contact),
		active:   make(map[int]struct{}),
	}
}

// ProcessEvent consumes one raw event in arrival order. When ev completes a
// frame, frameEnd is true and count holds the authoritative finger count for
// that frame; otherwise count is meaningless. Event types and codes the
// tracker does not know are ignored.
func (t *Tracker) ProcessEvent(ev InputEvent) (count int, frameEnd bool) {
	switch ev.Type {
	case EvAbs:
		t.processAbs(ev.Code, int(ev.Value))
	case EvSyn:
		if ev.Code == SynReport {
			t.commit()
			return len(t.active), true
		}
	}
	return 0, false
}

func (t *Tracker) processAbs(code uint16, value int) {
	switch code {
	case AbsMtSlot:
		t.currentSlot = value

	case AbsMtTrackingID:
		if value == LiftSentinel {
			// lifts are not deferred to the frame boundary; removing an
			// untracked slot is a no-op
			delete(t.contacts, t.currentSlot)
			delete(t.active, t.currentSlot)
		} else {
			t.pending.TrackingID = value
			t.pendingActive = true
			t.hasPending = true
			t.active[t.currentSlot] = struct{}{}
		}

	case AbsMtPositionX:
		t.pending.X = value
		t.hasPending = true

	case AbsMtPositionY:
		t.pending.Y = value
		t.hasPending = true
	}
}

func (t *Tracker) commit() {
	if t.hasPending && t.pendingActive {
		t.contacts[t.currentSlot] = t.pending
	}
	t.pendingActive = false
	t.hasPending = false
}

// ActiveCount returns the number of live contacts.
func (t *Tracker) ActiveCount() int {
	return len(t.active)
}

// Contacts returns a copy of the committed contact state, keyed by slot.
func (t *Tracker) Contacts() map[int]Contact {
	out := make(map[int]Contact, len(t.contacts))
	for slot, c := range t.contacts {
		out[slot] = c
	}
	return out
}
