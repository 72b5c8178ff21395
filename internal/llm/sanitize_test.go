package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "   \n  ",
			want:  "",
		},
		{
			name:  "mixed numbering markers are canonicalized",
			input: "1) First bug\n2. Second bug\n3)Third bug",
			want:  "1. First bug\n2. Second bug\n3. Third bug",
		},
		{
			name:  "fenced block is stripped",
			input: "1. Use strict mode\n```js\nvar x = 1;\n```\n2. Rename x",
			want:  "1. Use strict mode\nvar x = 1;\n2. Rename x",
		},
		{
			name:  "bullets and blank lines collapse",
			input: "- first point\n\n\n* second point\n+ third point",
			want:  "first point\nsecond point\nthird point",
		},
		{
			name:  "windows line endings normalized",
			input: "1) one\r\n2) two\r\n",
			want:  "1. one\n2. two",
		},
		{
			name:  "leaked keywords and brace spans removed",
			input: "1. Avoid public class here {int x = 1;} please",
			want:  "1. Avoid   here  please",
		},
		{
			name:  "unrecognized text passes through",
			input: "The model had nothing structured to say.",
			want:  "The model had nothing structured to say.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSuggestions(tt.input))
		})
	}
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fence with language tag",
			input: "```js\nlet x = 1;\n```",
			want:  "let x = 1;",
		},
		{
			name:  "fence without language tag",
			input: "```\nprint('hi')\n```",
			want:  "print('hi')",
		},
		{
			name:  "surrounding prose is dropped",
			input: "Here is the fix:\n```go\nx := 1\n```\nHope that helps!",
			want:  "x := 1",
		},
		{
			name:  "multiline interior preserved",
			input: "```python\ndef f():\n    return 1\n```",
			want:  "def f():\n    return 1",
		},
		{
			name:  "no fence falls back to trimmed input",
			input: "  var x = 1;\n",
			want:  "var x = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.input))
		})
	}
}

func TestExtractCodeIdempotent(t *testing.T) {
	inputs := []string{
		"var x = 1;",
		"```js\nvar x = 1;\n```",
		"multi\nline\ncode",
	}
	for _, in := range inputs {
		once := ExtractCode(in)
		assert.Equal(t, once, ExtractCode(once), "input %q", in)
	}
}
