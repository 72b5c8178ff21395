package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	purchaseCredits int
	purchasePrice   float64
	historyJSON     bool
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Manage the account's credit balance",
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current credit balance",
	RunE: func(_ *cobra.Command, _ []string) error {
		var balance struct {
			Credits    int     `json:"credits"`
			TotalSpent float64 `json:"totalSpent"`
		}
		if err := callAPI("GET", "/api/credits/balance", nil, &balance); err != nil {
			return err
		}

		successColor.Printf("Credits: %d\n", balance.Credits)
		dimColor.Printf("Total spent: %.2f\n", balance.TotalSpent)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the credit transaction history",
	RunE: func(_ *cobra.Command, _ []string) error {
		var entries []struct {
			Amount        int       `json:"amount"`
			Price         float64   `json:"price"`
			PaymentMethod string    `json:"paymentMethod"`
			Status        string    `json:"status"`
			CreatedAt     time.Time `json:"createdAt"`
		}
		if err := callAPI("GET", "/api/credits/history", nil, &entries); err != nil {
			return err
		}

		if historyJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No credit transactions found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DATE\tAMOUNT\tPRICE\tMETHOD\tSTATUS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\t%s\n",
				e.CreatedAt.Format(time.RFC822),
				e.Amount,
				e.Price,
				e.PaymentMethod,
				e.Status,
			)
		}
		return w.Flush()
	},
}

var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Purchase a credit package",
	Long: `Purchase a credit package.

The credits and price must name an exact package from the server's catalog,
for example 100 credits for 50.0.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		var receipt struct {
			CreditsAdded int    `json:"creditsAdded"`
			NewBalance   int    `json:"newBalance"`
			Message      string `json:"message"`
		}
		payload := map[string]any{"credits": purchaseCredits, "price": purchasePrice}
		if err := callAPI("POST", "/api/credits/purchase", payload, &receipt); err != nil {
			errorColor.Printf("Purchase failed: %v\n", err)
			return err
		}

		successColor.Println(receipt.Message)
		fmt.Printf("Added %d credits, new balance: %d\n", receipt.CreditsAdded, receipt.NewBalance)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	purchaseCmd.Flags().IntVar(&purchaseCredits, "credits", 100, "Number of credits to purchase")
	purchaseCmd.Flags().Float64Var(&purchasePrice, "price", 50.0, "Price of the selected package")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output history as JSON")

	creditsCmd.AddCommand(balanceCmd)
	creditsCmd.AddCommand(historyCmd)
	creditsCmd.AddCommand(purchaseCmd)
	rootCmd.AddCommand(creditsCmd)
}
