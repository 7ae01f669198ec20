package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/action"
)

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(newTxCreateCommand())
	return txCmd
}

func newTxCreateCommand() *cobra.Command {
	var configPath string
	var amount string
	var description string
	var cardID string
	var categoryID string
	var date string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a credit card expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup(configPath)
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			req := action.Request{
				Amount:       amt,
				Description:  description,
				CreditCardID: cardID,
				CategoryID:   categoryID,
				Date:         date,
			}

			result, err := action.CreateTransaction(cmd.Context(), client, req)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("transaction not created (status %d): %s", result.Status, result.Error)
			}

			fmt.Printf("Created transaction %s\n", result.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "abaco.yaml", "config file")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required, positive)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().StringVar(&cardID, "card", "", "credit card ID (required)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
