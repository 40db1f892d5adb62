package gesture

// KindTap is the only gesture kind with a detector today. Kind is an open
// tag rather than an enum so future kinds (swipe, hold) can be configured
// without changing the rule model; rules with an unknown kind load fine and
// simply never match.
const KindTap = "tap"

// Rule maps a gesture to the shell command it triggers.
type Rule struct {
	Kind    string `json:"kind"`
	Fingers int    `json:"fingers"`
	Command string `json:"command"`
}
