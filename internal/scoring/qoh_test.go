package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsScore_FivePerSkill(t *testing.T) {
	assert.Equal(t, 25.0, SkillsScore(5))
	assert.Equal(t, 0.0, SkillsScore(0))
}

func TestSkillsScore_UnboundedAboveHundred(t *testing.T) {
	// 5 points per skill with no cap: 25 skills scores 125.
	assert.Equal(t, 125.0, SkillsScore(25))
}

func TestSkillsScore_NegativeCountScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, SkillsScore(-3))
}

func TestBehaviorScore_AllNeutral(t *testing.T) {
	// Three questions answered "Neutral" (raw 3): (9/15)*100 = 60.
	score := BehaviorScore([]int{3, 3, 3})

	assert.InDelta(t, 60.0, score, 0.001)
}

func TestBehaviorScore_AllStronglyAgree(t *testing.T) {
	score := BehaviorScore([]int{5, 5, 5, 5})

	assert.Equal(t, 100.0, score)
}

func TestBehaviorScore_AllStronglyDisagree(t *testing.T) {
	score := BehaviorScore([]int{1, 1, 1})

	assert.InDelta(t, 20.0, score, 0.001)
}

func TestBehaviorScore_EmptySurvey(t *testing.T) {
	assert.Equal(t, 0.0, BehaviorScore(nil))
}

func TestAverageJD_Mean(t *testing.T) {
	assert.InDelta(t, 80.0, AverageJD([]float64{70, 90}), 0.001)
}

func TestAverageJD_EmptyScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageJD(nil))
}

func TestComposite_ReferenceCase(t *testing.T) {
	// skills=25 (5 skills), reference=90, behavior=60, avg JD=80.
	qoh := Composite(SubScores{
		Skills:     25,
		References: 90,
		Behavior:   60,
		JDMatch:    80,
	})

	assert.Equal(t, 63.8, qoh)
}

func TestComposite_RoundsToOneDecimal(t *testing.T) {
	qoh := Composite(SubScores{Skills: 1, References: 1, Behavior: 1, JDMatch: 0})

	assert.Equal(t, 0.8, qoh)
}

func TestWeightedComposite_EqualWeightsMatchMean(t *testing.T) {
	sub := SubScores{JDMatch: 88, References: 90, Behavior: 85, Skills: 80}

	qoh, err := WeightedComposite(sub, Weights{JDMatch: 25, References: 25, Behavior: 25, Skills: 25})

	require.NoError(t, err)
	assert.InDelta(t, (88.0+90+85+80)/4, qoh, 0.05)
}

func TestWeightedComposite_ZeroTotalWeight(t *testing.T) {
	_, err := WeightedComposite(SubScores{JDMatch: 88}, Weights{})

	assert.ErrorIs(t, err, ErrZeroWeights)
}

func TestWeightedComposite_ScaleInvariant(t *testing.T) {
	sub := SubScores{JDMatch: 72, References: 50, Behavior: 80, Skills: 60}

	a, err := WeightedComposite(sub, Weights{JDMatch: 25, References: 25, Behavior: 25, Skills: 25})
	require.NoError(t, err)
	b, err := WeightedComposite(sub, Weights{JDMatch: 50, References: 50, Behavior: 50, Skills: 50})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestWeightedComposite_SingleWeightDominates(t *testing.T) {
	sub := SubScores{JDMatch: 88, References: 40, Behavior: 40, Skills: 40}

	qoh, err := WeightedComposite(sub, Weights{JDMatch: 100})

	require.NoError(t, err)
	assert.Equal(t, 88.0, qoh)
}

func TestWeightsTotal(t *testing.T) {
	assert.Equal(t, 100.0, Weights{JDMatch: 25, References: 25, Behavior: 25, Skills: 25}.Total())
	assert.Equal(t, 0.0, Weights{}.Total())
}
