// Package llm implements the inference-facing pieces of the review pipeline:
// prompt construction, the Ollama client, and the response sanitizer.
package llm

import "fmt"

// SuggestionsPrompt builds the review-suggestions prompt for the given code
// and language. Pure and deterministic; the code body is embedded verbatim.
func SuggestionsPrompt(code, language string) string {
	return fmt.Sprintf("You're a senior software engineer. Review the following %s"+
		" code and tell the bugs, give improvement suggestions and keep it short and simple to understand. List them as:\n"+
		"1. Bug in the code :-\n2. Suggestion and improvements in code can be :-\n...\n\nCode:\n\n%s",
		language, code)
}

// CorrectedCodePrompt builds the corrected-code prompt. The model is told to
// return only code; the sanitizer still strips a fence if one leaks through.
func CorrectedCodePrompt(code, language string) string {
	return fmt.Sprintf("Return ONLY the corrected %s code with:\n"+
		"- NO explanations\n"+
		"- NO comments\n"+
		"- NO markdown formatting\n"+
		"- NO code blocks (```)\n"+
		"- NO section headers\n"+
		"- NO line numbers\n"+
		"- NO additional text of any kind\n\n"+
		"Just return the pure executable code with proper syntax. If you include anything other than code, the response will be rejected.\n\n"+
		"Code to correct:\n\n%s",
		language, code)
}
