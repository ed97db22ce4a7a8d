// Package scoring provides the Quality of Hire composite score and the
// lexical resume-to-job-description match computation.
package scoring

import "strings"

// TokenSet lowercases text and splits it on whitespace into a set of unique
// tokens. Punctuation is kept attached to tokens, so "team," and "team" are
// distinct entries.
func TokenSet(text string) map[string]struct{} {
	tokens := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// LexicalMatch computes the overlap between resume text and a job description
// as a percentage of JD tokens also found in the resume. The result is always
// in [0, 100]; an empty JD yields 0.
func LexicalMatch(resumeText, jdText string) float64 {
	resumeTokens := TokenSet(resumeText)
	jdTokens := TokenSet(jdText)

	overlap := 0
	for tok := range jdTokens {
		if _, ok := resumeTokens[tok]; ok {
			overlap++
		}
	}

	denom := len(jdTokens)
	if denom < 1 {
		denom = 1
	}
	return float64(overlap) / float64(denom) * 100
}

// LexicalMatchAll scores one resume against each job description
// independently. No normalization is applied across the JDs.
func LexicalMatchAll(resumeText string, jdTexts []string) []float64 {
	scores := make([]float64, len(jdTexts))
	for i, jd := range jdTexts {
		scores[i] = LexicalMatch(resumeText, jd)
	}
	return scores
}
