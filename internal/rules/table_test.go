package rules

import (
	"testing"

	"jeopardai/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	rs := table.RulesFor("RHYME TIME")
	require.Len(t, rs, 1)
	assert.Equal(t, KindRhyme, rs[0].Kind)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"not":"a list"`},
		{"unknown kind", `[{"category": "X", "kind": "ANAGRAM"}]`},
		{"missing category", `[{"kind": "RHYME"}]`},
		{"contains letter without letter", `[{"category": "X", "kind": "CONTAINS_LETTER"}]`},
		{"contains letter with word", `[{"category": "X", "kind": "CONTAINS_LETTER", "letter": "ab"}]`},
		{"custom text without text", `[{"category": "X", "kind": "CUSTOM_TEXT"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			require.Error(t, err)

			var cfgErr *model.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestRulesFor_CategoryNormalization(t *testing.T) {
	table, err := Load([]byte(`[{"category": "Rhyme Time", "kind": "RHYME"}]`))
	require.NoError(t, err)

	assert.Len(t, table.RulesFor("RHYME TIME"), 1)
	assert.Len(t, table.RulesFor("  rhyme time "), 1)
	assert.Empty(t, table.RulesFor("GENERAL KNOWLEDGE"))
}

func TestRulesFor_PreservesInsertionOrder(t *testing.T) {
	table, err := Load([]byte(`[
		{"category": "X", "kind": "CONTAINS_LETTER", "letter": "a"},
		{"category": "X", "kind": "RHYME"},
		{"category": "X", "kind": "CUSTOM_TEXT", "text": "hint"}
	]`))
	require.NoError(t, err)

	rs := table.RulesFor("X")
	require.Len(t, rs, 3)
	assert.Equal(t, KindContainsLetter, rs[0].Kind)
	assert.Equal(t, KindRhyme, rs[1].Kind)
	assert.Equal(t, KindCustomText, rs[2].Kind)
}
