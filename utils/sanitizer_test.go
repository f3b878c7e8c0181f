package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ada", "Ada"},
		{"  Ada  ", "Ada"},
		{"<script>alert(1)</script>Ada", "Ada"},
		{"<b>Ada</b>", "Ada"},
		{"<img src=x onerror=alert(1)>", ""},
		// Plain-text punctuation is stored verbatim, not entity-escaped
		{"O'Brien", "O'Brien"},
		{"Rock & Roll", "Rock & Roll"},
		{"C < B", "C < B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.in), "input %q", tt.in)
	}
}

func TestCleanSubjects(t *testing.T) {
	got := CleanSubjects([]string{"Math", " Physics ", "<i>Art</i>", "<img src=x>", "Math"})
	assert.Equal(t, []string{"Math", "Physics", "Art", "Math"}, got, "duplicates survive, empties do not")
}

func TestCleanSubjectsKeepsPunctuation(t *testing.T) {
	got := CleanSubjects([]string{"C < B", "Rock & Roll", "O'Brien's Law"})
	assert.Equal(t, []string{"C < B", "Rock & Roll", "O'Brien's Law"}, got)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, ERROR, ParseLevel(" error "))
	assert.Equal(t, INFO, ParseLevel("nonsense"))
	assert.Equal(t, INFO, ParseLevel(""))
}
