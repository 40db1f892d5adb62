package commands

import (
	"github.com/evtap/evtap/config"
)

// RulesCommand parses a rules file and returns the loaded rules, so broken
// config files can be caught without touching the screen.
func RulesCommand(path string) *CommandResponse {
	rules, err := config.LoadRules(path)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(rules)
}
