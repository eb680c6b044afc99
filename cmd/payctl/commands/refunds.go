package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Manage refunds of a payment",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsCancelCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	var (
		from  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list PAYMENT_ID",
		Short: "List the refunds of a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			refunds, err := client.Refunds().List(cmd.Context(), args[0], from, limit, nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(refunds)
			if done {
				return err
			}

			return renderRefundsTable(refunds)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "cursor to start listing from")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "number of refunds to fetch")

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID REFUND_ID",
		Short: "Show a single refund",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Get(cmd.Context(), args[0], args[1], nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(refund)
			if done {
				return err
			}

			return renderRefundTable(refund)
		},
	}
}

func newRefundsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID REFUND_ID",
		Short: "Cancel a refund that has not been processed yet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			err = client.Refunds().Cancel(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Println("Refund cancelled")

			return nil
		},
	}
}

func renderRefundsTable(refunds *paykit.RefundList) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Payment", "Status", "Amount", "Created")

	for _, refund := range refunds.Items {
		_ = table.Append(refund.ID, refund.PaymentID, refund.Status, formatAmount(refund.Amount), refund.CreatedAt)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Showing %d of %d refunds\n", len(refunds.Items), refunds.Count)

	return nil
}

func renderRefundTable(refund *paykit.Refund) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", refund.ID)
	_ = table.Append("Payment", refund.PaymentID)
	_ = table.Append("Status", refund.Status)
	_ = table.Append("Amount", formatAmount(refund.Amount))
	_ = table.Append("Description", refund.Description)
	_ = table.Append("Created", refund.CreatedAt)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
