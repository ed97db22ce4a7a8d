package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"skills\": [\"SQL\"]}\n```"

	assert.Equal(t, `{"skills": ["SQL"]}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"skills\": [\"SQL\"]}\n```"

	assert.Equal(t, `{"skills": ["SQL"]}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"scores": [82, 76]}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Whitespace(t *testing.T) {
	input := "  \n{\"scores\": []}\n  "

	assert.Equal(t, `{"scores": []}`, CleanJSONBlock(input))
}
