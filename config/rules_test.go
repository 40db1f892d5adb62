package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtap/evtap/gesture"
)

func TestParseRules_SingleBlock(t *testing.T) {
	input := "gesture=tap\nfingers=3\ncommand=foo\n\n"

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, gesture.Rule{Kind: "tap", Fingers: 3, Command: "foo"}, rules[0])
}

func TestParseRules_TrailingBlockWithoutBlankLine(t *testing.T) {
	input := "gesture=tap\nfingers=2\ncommand=echo hi"

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 2, rules[0].Fingers)
	assert.Equal(t, "echo hi", rules[0].Command)
}

func TestParseRules_MultipleBlocks(t *testing.T) {
	input := `# taps
gesture=tap
fingers=3
command=three

gesture=tap
fingers=4
command=four
`

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "three", rules[0].Command)
	assert.Equal(t, "four", rules[1].Command)
}

func TestParseRules_CommentsAndWhitespace(t *testing.T) {
	input := "# a comment\n  gesture = tap  \n\tfingers =\t3\n command = run me \n"

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "tap", rules[0].Kind)
	assert.Equal(t, "run me", rules[0].Command)
}

func TestParseRules_UnknownKindIsKept(t *testing.T) {
	input := "gesture=swipe\nfingers=2\ncommand=later\n"

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "swipe", rules[0].Kind)
}

func TestParseRules_InvalidBlocksSkipped(t *testing.T) {
	input := `gesture=tap
fingers=zero
command=bad

gesture=tap
fingers=-1
command=negative

fingers=3
command=no kind

gesture=tap
fingers=3
command=good
`

	rules, err := ParseRules(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "good", rules[0].Command)
}

func TestParseRules_EmptyConfigIsError(t *testing.T) {
	_, err := ParseRules(strings.NewReader("# nothing but comments\n"))
	assert.Error(t, err)

	_, err = ParseRules(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules("/nonexistent/rules.conf")
	assert.Error(t, err)
}
