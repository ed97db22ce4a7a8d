package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	assert.Equal(t, StepWelcome, First())
}

func TestAdvance_WalksWholeJourney(t *testing.T) {
	step := First()
	visited := []Step{step}

	for !Terminal(step) {
		var err error
		step, err = Advance(step)
		require.NoError(t, err)
		visited = append(visited, step)
	}

	assert.Equal(t, Count(), len(visited))
	assert.Equal(t, StepSummary, step)
}

func TestAdvance_FromSummaryFails(t *testing.T) {
	_, err := Advance(StepSummary)

	var invalid *ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StepSummary, invalid.From)
}

func TestAdvance_UnknownStep(t *testing.T) {
	_, err := Advance(Step("bogus"))

	assert.Error(t, err)
}

func TestBack_FromWelcomeFails(t *testing.T) {
	_, err := Back(StepWelcome)

	var invalid *ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StepWelcome, invalid.From)
}

func TestBack_InvertsAdvance(t *testing.T) {
	step := First()
	for !Terminal(step) {
		forward, err := Advance(step)
		require.NoError(t, err)

		back, err := Back(forward)
		require.NoError(t, err)
		assert.Equal(t, step, back)

		step = forward
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(StepJDMatch))
	assert.False(t, Valid(Step("")))
	assert.False(t, Valid(Step("step_3")))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(StepWelcome))
	assert.Equal(t, Count()-1, Index(StepSummary))
	assert.Equal(t, -1, Index(Step("bogus")))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(StepSummary))
	assert.False(t, Terminal(StepWelcome))
	assert.False(t, Terminal(Step("bogus")))
}
