package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUpload_PlainText(t *testing.T) {
	text, err := ExtractUpload("resume.txt", []byte("  SQL, Recruiting\n\n  Excel, Leadership  \n"))

	require.NoError(t, err)
	assert.Equal(t, "SQL, Recruiting\nExcel, Leadership", text)
}

func TestExtractUpload_EmptyFile(t *testing.T) {
	_, err := ExtractUpload("resume.txt", nil)

	assert.Error(t, err)
}

func TestExtractUpload_WhitespaceOnly(t *testing.T) {
	_, err := ExtractUpload("resume.txt", []byte("   \n\t  "))

	assert.Error(t, err)
}

func TestExtractUpload_InvalidPDF(t *testing.T) {
	_, err := ExtractUpload("resume.pdf", []byte("not a pdf at all"))

	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses blank lines", "a\n\n\nb", "a\nb"},
		{"trims line whitespace", "  a  \n  b  ", "a\nb"},
		{"empty input", "", ""},
		{"single line", "resume", "resume"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.in))
		})
	}
}
