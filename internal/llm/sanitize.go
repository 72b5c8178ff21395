package llm

import (
	"regexp"
	"strings"
)

// The sanitizer is a best-effort heuristic cleanup of free-form model
// output, not a parser. Text it cannot recognize passes through unchanged;
// none of these functions can fail. The raw model output is persisted
// elsewhere before sanitization, so nothing is lost here.
var (
	fenceOpenRegex   = regexp.MustCompile("```[a-zA-Z]*\n")
	fenceTickRegex   = regexp.MustCompile("```")
	parenNumberRegex = regexp.MustCompile(`(?m)^(\d+)\)`)
	dotNumberRegex   = regexp.MustCompile(`(?m)^(\d+)\.[ \t]*`)
	bulletRegex      = regexp.MustCompile(`(?m)^[ \t*\-+][ \t]*`)
	blankLineRegex   = regexp.MustCompile(`(?m)^[ \t]*\n`)
	keywordRegex     = regexp.MustCompile(`\b(?:public|class|void|static)\b`)
	braceSpanRegex   = regexp.MustCompile(`\{[^}]*\}`)

	// Matches a fenced block with an optional language tag, capturing the
	// interior.
	fencedBlockRegex = regexp.MustCompile("(?s)```(?:\\w+)?[ \t]*\n(.*?)\n```")
)

// CleanSuggestions normalizes a suggestions blob into a plain numbered list:
// fenced code blocks are dropped, line endings normalized, "1)" and "1."
// markers canonicalized to "1. ", leading bullets stripped, blank lines
// collapsed, and a small fixed set of code tokens and balanced brace spans
// removed when they leak from the model.
func CleanSuggestions(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// Code blocks do not belong in the suggestions surface.
	text = fenceOpenRegex.ReplaceAllString(text, "")
	text = fenceTickRegex.ReplaceAllString(text, "")

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)

	// "1)" and "1."  ->  "1. "
	text = parenNumberRegex.ReplaceAllString(text, "$1.")
	text = dotNumberRegex.ReplaceAllString(text, "$1. ")

	text = bulletRegex.ReplaceAllString(text, "")
	text = blankLineRegex.ReplaceAllString(text, "")

	// Leaked code fragments.
	text = keywordRegex.ReplaceAllString(text, "")
	text = braceSpanRegex.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// ExtractCode returns the interior of the first triple-backtick fence,
// trimmed. When no fence is found the trimmed input is returned as-is; the
// function never fails, and it is idempotent on already-unfenced input.
func ExtractCode(text string) string {
	if m := fencedBlockRegex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
