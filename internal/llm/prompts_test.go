package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompts(t *testing.T) {
	code := "var x=1"

	suggestions := SuggestionsPrompt(code, "javascript")
	assert.Contains(t, suggestions, "senior software engineer")
	assert.Contains(t, suggestions, "javascript code")
	assert.Contains(t, suggestions, code)

	corrected := CorrectedCodePrompt(code, "javascript")
	assert.Contains(t, corrected, "Return ONLY the corrected javascript code")
	assert.Contains(t, corrected, "NO markdown formatting")
	assert.Contains(t, corrected, code)

	// Pure functions: same input, same output.
	assert.Equal(t, suggestions, SuggestionsPrompt(code, "javascript"))
	assert.Equal(t, corrected, CorrectedCodePrompt(code, "javascript"))

	// The code body is embedded verbatim, without escaping.
	raw := "if (a < \"b\") { return `x` }"
	assert.Contains(t, SuggestionsPrompt(raw, "go"), raw)
}
