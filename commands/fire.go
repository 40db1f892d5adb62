package commands

import (
	"fmt"

	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/dispatch"
	"github.com/evtap/evtap/gesture"
)

// FireRequest selects which configured rule to trigger manually
type FireRequest struct {
	RulesPath string
	Fingers   int
}

// FireCommand dispatches the first tap rule matching the finger count, for
// testing rule files end to end without touching the screen.
func FireCommand(req FireRequest) *CommandResponse {
	rules, err := config.LoadRules(req.RulesPath)
	if err != nil {
		return NewErrorResponse(err)
	}

	for _, rule := range rules {
		if rule.Kind != gesture.KindTap || rule.Fingers != req.Fingers {
			continue
		}

		if err := dispatch.NewShellDispatcher().Dispatch(rule.Command); err != nil {
			return NewErrorResponse(err)
		}

		return NewSuccessResponse(map[string]interface{}{
			"message": fmt.Sprintf("dispatched %q for %d-finger tap", rule.Command, rule.Fingers),
		})
	}

	return NewErrorResponse(fmt.Errorf("no tap rule for %d finger(s)", req.Fingers))
}
