package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Manage payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsCancelCommand())
	cmd.AddCommand(newPaymentsRefundCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		from  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			payments, err := client.Payments().List(cmd.Context(), from, limit, nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(payments)
			if done {
				return err
			}

			return renderPaymentsTable(payments)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "cursor to start listing from")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "number of payments to fetch")

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Show a single payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(payment)
			if done {
				return err
			}

			return renderPaymentTable(payment)
		},
	}
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		amountValue string
		currency    string
		description string
		redirectURL string
		webhookURL  string
		method      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromFlags(amountValue, currency)
			if err != nil {
				return err
			}

			if amount == nil {
				return constants.ErrAmountRequired
			}

			if description == "" {
				return constants.ErrDescriptionRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Create(cmd.Context(), &paykit.PaymentRequest{
				Amount:      amount,
				Description: description,
				RedirectURL: redirectURL,
				WebhookURL:  webhookURL,
				Method:      method,
			}, nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(payment)
			if done {
				return err
			}

			if checkout := payment.CheckoutURL(); checkout != "" {
				fmt.Fprintln(os.Stderr, "Checkout:", checkout)
			}

			return renderPaymentTable(payment)
		},
	}

	cmd.Flags().StringVar(&amountValue, "amount", "", "decimal amount, e.g. 10.00")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code, e.g. EUR")
	cmd.Flags().StringVar(&description, "description", "", "description shown to the customer")
	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "URL the customer returns to")
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "URL for status change notifications")
	cmd.Flags().StringVar(&method, "method", "", "force a payment method, e.g. ideal")

	return cmd
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID",
		Short: "Cancel a payment that is still cancelable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if payment == nil {
				fmt.Println("Payment cancelled")

				return nil
			}

			done, err := renderStructured(payment)
			if done {
				return err
			}

			return renderPaymentTable(payment)
		},
	}
}

func newPaymentsRefundCommand() *cobra.Command {
	var (
		amountValue string
		currency    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "refund PAYMENT_ID",
		Short: "Refund (part of) a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromFlags(amountValue, currency)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			refund, err := client.Payments().Refund(cmd.Context(), args[0], &paykit.RefundRequest{
				Amount:      amount,
				Description: description,
			})
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

	cmd.Flags().StringVar(&amountValue, "amount", "", "decimal amount to refund (defaults to the full remainder)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&description, "description", "", "description for the refund")

	return cmd
}

func renderPaymentsTable(payments *paykit.PaymentList) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Amount", "Description", "Created")

	for _, payment := range payments.Items {
		_ = table.Append(payment.ID, payment.Status, formatAmount(payment.Amount), payment.Description, payment.CreatedAt)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Showing %d of %d payments\n", len(payments.Items), payments.Count)

	return nil
}

func renderPaymentTable(payment *paykit.Payment) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", payment.ID)
	_ = table.Append("Mode", payment.Mode)
	_ = table.Append("Status", payment.Status)
	_ = table.Append("Amount", formatAmount(payment.Amount))
	_ = table.Append("Refunded", formatAmount(payment.AmountRefunded))
	_ = table.Append("Description", payment.Description)
	_ = table.Append("Method", payment.Method)
	_ = table.Append("Created", payment.CreatedAt)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
