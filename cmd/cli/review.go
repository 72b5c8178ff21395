package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	reviewLanguage string
	outputJSON     bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Submit a source file for review",
	Long: `Submit a source file to the CodePilot server for review.

The server returns cleaned improvement suggestions and a corrected version
of the code. The language is inferred from the file extension unless
--language is given.

Examples:
  codepilot-cli review main.go
  codepilot-cli review --language python script.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

var listCmd = &cobra.Command{
	Use:   "list [language]",
	Short: "List stored reviews, optionally filtered by language",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&reviewLanguage, "language", "l", "", "Language of the submitted code (default: from file extension)")
	listCmd.Flags().BoolVar(&outputJSON, "json", false, "Output reviews as JSON")
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(listCmd)
}

// languageFromExtension maps common file extensions to the language names
// the review prompts use.
func languageFromExtension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "go":
		return "go"
	case "py":
		return "python"
	case "js":
		return "javascript"
	case "ts":
		return "typescript"
	case "java":
		return "java"
	case "rb":
		return "ruby"
	case "rs":
		return "rust"
	case "c", "h":
		return "c"
	case "cpp", "cc", "hpp":
		return "cpp"
	case "cs":
		return "csharp"
	default:
		return ext
	}
}

func runReview(_ *cobra.Command, args []string) error {
	path := args[0]
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	language := reviewLanguage
	if language == "" {
		language = languageFromExtension(path)
	}
	if language == "" {
		return fmt.Errorf("cannot infer language from %s, pass --language", path)
	}

	titleColor.Printf("Reviewing %s (%s)...\n", path, language)
	start := time.Now()

	var result struct {
		Review           string  `json:"review"`
		CorrectedCode    string  `json:"correctedCode"`
		CreditsRemaining *int    `json:"creditsRemaining"`
		ReviewID         *string `json:"reviewId"`
	}
	payload := map[string]string{"code": string(code), "language": language}
	if err := callAPI("POST", "/api/review", payload, &result); err != nil {
		errorColor.Printf("Review failed: %v\n", err)
		return err
	}

	dimColor.Printf("done in %s\n\n", time.Since(start).Round(time.Millisecond))

	titleColor.Println("Suggestions")
	fmt.Println(result.Review)

	if result.CorrectedCode != "" {
		fmt.Println()
		titleColor.Println("Corrected code")
		fmt.Println(result.CorrectedCode)
	}

	if result.CreditsRemaining != nil {
		fmt.Println()
		successColor.Printf("Credits remaining: %d\n", *result.CreditsRemaining)
	}
	return nil
}

func runList(_ *cobra.Command, args []string) error {
	path := "/api/review"
	if len(args) == 1 {
		path = "/api/review/language/" + args[0]
	}

	var reviews []struct {
		ID        string    `json:"id"`
		Language  string    `json:"language"`
		Code      string    `json:"code"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := callAPI("GET", path, nil, &reviews); err != nil {
		return err
	}

	if outputJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reviews)
	}

	if len(reviews) == 0 {
		fmt.Println("No reviews found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tLANGUAGE\tSUBMITTED\tCODE")
	for _, r := range reviews {
		snippet := strings.ReplaceAll(r.Code, "\n", " ")
		if len(snippet) > 40 {
			snippet = snippet[:40] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.ID,
			r.Language,
			r.Timestamp.Format(time.RFC822),
			snippet,
		)
	}
	return w.Flush()
}
