package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankcore-cli",
		Short: "Bankcore CLI tool",
		Long:  `A command line interface for interacting with the bankcore transaction API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bankcore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(depositCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(transactionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func transferCmd() *cobra.Command {
	var from, to int64
	var amount, currency string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transfers", map[string]any{
				"from_account_id": from,
				"to_account_id":   to,
				"amount":          amount,
				"currency":        currency,
			})
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "Source account id")
	cmd.Flags().Int64Var(&to, "to", 0, "Destination account id")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, e.g. 100.00")
	cmd.Flags().StringVar(&currency, "currency", "RUB", "Currency code (RUB, USD, EUR)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func depositCmd() *cobra.Command {
	var account int64
	var amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Credit an account from an external source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/accounts/%d/deposits", account), map[string]any{
				"amount": amount,
			})
		},
	}

	cmd.Flags().Int64Var(&account, "account", 0, "Account id")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in the account's currency, e.g. 100.00")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account [id]",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}

	return cmd
}

func transactionsCmd() *cobra.Command {
	var account int64
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/transactions?limit=%d&offset=%d", limit, offset)
			if account != 0 {
				path = fmt.Sprintf("/api/v1/accounts/%d/transactions?limit=%d&offset=%d", account, limit, offset)
			}
			return getJSON(path)
		},
	}

	cmd.Flags().Int64Var(&account, "account", 0, "Limit to one account")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// Generated per invocation so an accidental double-run of the same
	// command is not deduplicated, but a network-level retry is.
	req.Header.Set("Idempotency-Key", ulid.Make().String())

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(parsed)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to format response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
