package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/utils"
)

// ParseRules reads gesture rules in block form: key=value lines, blocks
// separated by blank lines, '#' starting a comment line. Recognized keys are
// "gesture", "fingers" and "command"; surrounding whitespace is trimmed. A
// trailing block without a final blank line is still captured. Invalid
// blocks are skipped with a warning; zero valid rules is an error because
// there would be nothing to detect.
func ParseRules(r io.Reader) ([]gesture.Rule, error) {
	var rules []gesture.Rule
	block := make(map[string]string)

	flush := func() {
		if len(block) == 0 {
			return
		}
		rule, err := ruleFromBlock(block)
		if err != nil {
			utils.Warn("skipping rule block: %v", err)
		} else {
			rules = append(rules, rule)
		}
		block = make(map[string]string)
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			utils.Warn("ignoring malformed rules line: %q", line)
			continue
		}
		block[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}
	flush()

	if len(rules) == 0 {
		return nil, fmt.Errorf("no valid gesture rules found")
	}

	return rules, nil
}

func ruleFromBlock(block map[string]string) (gesture.Rule, error) {
	kind := block["gesture"]
	if kind == "" {
		return gesture.Rule{}, fmt.Errorf("missing 'gesture' key")
	}

	command := block["command"]
	if command == "" {
		return gesture.Rule{}, fmt.Errorf("missing 'command' key")
	}

	fingers, err := strconv.Atoi(block["fingers"])
	if err != nil {
		return gesture.Rule{}, fmt.Errorf("invalid 'fingers' value %q", block["fingers"])
	}
	if fingers <= 0 {
		return gesture.Rule{}, fmt.Errorf("'fingers' must be positive, got %d", fingers)
	}

	return gesture.Rule{Kind: kind, Fingers: fingers, Command: command}, nil
}

// LoadRules parses the rules file at path.
func LoadRules(path string) ([]gesture.Rule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer file.Close()

	rules, err := ParseRules(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}
