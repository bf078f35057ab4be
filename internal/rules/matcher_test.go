package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, data string) *Matcher {
	t.Helper()
	table, err := Load([]byte(data))
	require.NoError(t, err)
	return NewMatcher(table)
}

func TestMatch_NoRulesConfigured(t *testing.T) {
	m := mustLoad(t, `[]`)

	verdict, ok := m.Match("GENERAL KNOWLEDGE", "paris", "PARIS")
	assert.False(t, ok)
	assert.Nil(t, verdict)
}

func TestMatch_RhymeRule(t *testing.T) {
	m := mustLoad(t, `[{"category": "RHYME TIME", "kind": "RHYME"}]`)

	verdict, ok := m.Match("Rhyme Time", "BAT", "CAT")
	require.True(t, ok)
	assert.True(t, verdict.Correct)
	assert.Empty(t, verdict.Feedback)
	assert.Equal(t, "BAT", verdict.UserAnswer)
	assert.Equal(t, "CAT", verdict.CorrectAnswer)

	// Non-rhyming answers fall through to semantic judgment.
	verdict, ok = m.Match("RHYME TIME", "DOG", "CAT")
	assert.False(t, ok)
	assert.Nil(t, verdict)
}

func TestMatch_RhymeRuleWithExplicitTarget(t *testing.T) {
	m := mustLoad(t, `[{"category": "RHYMES WITH MOON", "kind": "RHYME", "target": "moon"}]`)

	_, ok := m.Match("RHYMES WITH MOON", "spoon", "HARVEST MOON")
	assert.True(t, ok)

	_, ok = m.Match("RHYMES WITH MOON", "sun", "HARVEST MOON")
	assert.False(t, ok)
}

func TestMatch_ContainsLetterRule(t *testing.T) {
	m := mustLoad(t, `[{"category": "\"S\" WORDS", "kind": "CONTAINS_LETTER", "letter": "s"}]`)

	_, ok := m.Match(`"S" WORDS`, "Sahara", "SAHARA")
	assert.True(t, ok)

	_, ok = m.Match(`"S" WORDS`, "gobi", "SAHARA")
	assert.False(t, ok)
}

func TestMatch_FirstSatisfiedRuleWins(t *testing.T) {
	// The advisory CUSTOM_TEXT rule comes first and can never fire; the
	// matcher must fall through to the rhyme rule behind it.
	m := mustLoad(t, `[
		{"category": "X", "kind": "CUSTOM_TEXT", "text": "hint"},
		{"category": "X", "kind": "RHYME"}
	]`)

	verdict, ok := m.Match("X", "BAT", "CAT")
	require.True(t, ok)
	assert.True(t, verdict.Correct)
}

func TestMatch_CustomTextNeverFires(t *testing.T) {
	m := mustLoad(t, `[{"category": "SPELLING BEE", "kind": "CUSTOM_TEXT", "text": "exact spelling required"}]`)

	_, ok := m.Match("SPELLING BEE", "onomatopoeia", "onomatopoeia")
	assert.False(t, ok)

	assert.Equal(t, []string{"exact spelling required"}, m.Descriptions("SPELLING BEE"))
}

func TestDescriptions(t *testing.T) {
	m := mustLoad(t, `[
		{"category": "X", "kind": "RHYME"},
		{"category": "X", "kind": "CONTAINS_LETTER", "letter": "q"}
	]`)

	descs := m.Descriptions("X")
	require.Len(t, descs, 2)
	assert.Contains(t, descs[0], "rhyme")
	assert.Contains(t, descs[1], `"q"`)

	assert.Nil(t, m.Descriptions("UNCONFIGURED"))
}
