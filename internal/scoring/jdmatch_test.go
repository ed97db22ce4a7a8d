package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSet_Deduplicates(t *testing.T) {
	set := TokenSet("sql python sql python")

	assert.Len(t, set, 2)
	assert.Contains(t, set, "sql")
	assert.Contains(t, set, "python")
}

func TestTokenSet_KeepsPunctuation(t *testing.T) {
	set := TokenSet("team, team")

	// Trailing punctuation makes a distinct token.
	assert.Len(t, set, 2)
	assert.Contains(t, set, "team,")
	assert.Contains(t, set, "team")
}

func TestLexicalMatch_FullOverlap(t *testing.T) {
	score := LexicalMatch("sql python sql python", "sql python")

	assert.Equal(t, 100.0, score)
}

func TestLexicalMatch_NoSharedTokens(t *testing.T) {
	score := LexicalMatch("golang kubernetes", "accounting payroll")

	assert.Equal(t, 0.0, score)
}

func TestLexicalMatch_PartialOverlap(t *testing.T) {
	score := LexicalMatch("sql excel leadership", "sql python excel recruiting")

	// 2 of 4 JD tokens found in the resume.
	assert.InDelta(t, 50.0, score, 0.001)
}

func TestLexicalMatch_CaseInsensitive(t *testing.T) {
	score := LexicalMatch("SQL Python", "sql python")

	assert.Equal(t, 100.0, score)
}

func TestLexicalMatch_EmptyJD(t *testing.T) {
	score := LexicalMatch("sql python", "")

	assert.Equal(t, 0.0, score)
}

func TestLexicalMatch_EmptyResume(t *testing.T) {
	score := LexicalMatch("", "sql python")

	assert.Equal(t, 0.0, score)
}

func TestLexicalMatch_AlwaysInRange(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		jd     string
	}{
		{"both empty", "", ""},
		{"resume superset", "a b c d e f g", "a b"},
		{"jd superset", "a", "a b c d e f g"},
		{"repeated tokens", "go go go", "go go"},
		{"whitespace only", "   \t\n  ", "  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := LexicalMatch(tc.resume, tc.jd)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestLexicalMatchAll_IndependentScores(t *testing.T) {
	scores := LexicalMatchAll("sql python excel", []string{"sql python", "ruby rails"})

	assert.Len(t, scores, 2)
	assert.Equal(t, 100.0, scores[0])
	assert.Equal(t, 0.0, scores[1])
}

func TestLexicalMatchAll_Empty(t *testing.T) {
	scores := LexicalMatchAll("sql", nil)

	assert.Empty(t, scores)
}
