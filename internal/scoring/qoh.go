package scoring

import (
	"errors"
	"math"
)

// DefaultReferenceScore stands in for a reference-scoring algorithm that has
// not been built yet. Reference content never affects it.
const DefaultReferenceScore = 90.0

// likertMax is the top of the per-question Likert scale (1..5).
const likertMax = 5

// ErrZeroWeights is returned when every recruiter weight is zero, in which
// case no weighted score is computable.
var ErrZeroWeights = errors.New("all weights are zero: no score computable")

// SubScores holds the four per-candidate inputs to the composite.
type SubScores struct {
	JDMatch    float64 `json:"jd_match"`
	References float64 `json:"references"`
	Behavior   float64 `json:"behavior"`
	Skills     float64 `json:"skills"`
}

// Weights holds the recruiter-adjustable slider values (each 0..100).
type Weights struct {
	JDMatch    float64 `json:"jd_match"`
	References float64 `json:"references"`
	Behavior   float64 `json:"behavior"`
	Skills     float64 `json:"skills"`
}

// Total returns the weight sum used as the weighted-average denominator.
func (w Weights) Total() float64 {
	return w.JDMatch + w.References + w.Behavior + w.Skills
}

// SkillsScore scores 5 points per selected skill. More than 20 selections
// pushes the value above 100; nothing clamps it.
func SkillsScore(selectedSkills int) float64 {
	if selectedSkills < 0 {
		return 0
	}
	return float64(selectedSkills) * 5
}

// BehaviorScore rescales Likert responses (1..5 each) to 0..100 via
// sum/(n*5)*100. An empty survey scores 0.
func BehaviorScore(responses []int) float64 {
	if len(responses) == 0 {
		return 0
	}
	sum := 0
	for _, r := range responses {
		sum += r
	}
	return float64(sum) / float64(len(responses)*likertMax) * 100
}

// AverageJD returns the arithmetic mean of per-JD match scores, 0 when the
// candidate has not matched against any JD yet.
func AverageJD(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Composite combines the four sub-scores with equal weight, rounded to one
// decimal place.
func Composite(sub SubScores) float64 {
	return round1((sub.Skills + sub.References + sub.Behavior + sub.JDMatch) / 4)
}

// WeightedComposite combines the sub-scores using recruiter-chosen weights.
// The result is invariant under uniform positive scaling of all weights.
// Returns ErrZeroWeights when the weight total is zero.
func WeightedComposite(sub SubScores, w Weights) (float64, error) {
	total := w.Total()
	if total == 0 {
		return 0, ErrZeroWeights
	}
	weighted := sub.JDMatch*w.JDMatch +
		sub.References*w.References +
		sub.Behavior*w.Behavior +
		sub.Skills*w.Skills
	return round1(weighted / total), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
