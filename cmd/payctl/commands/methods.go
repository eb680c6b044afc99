package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// NewMethodsCommand creates the payment methods command group.
func NewMethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"method"},
		Short:   "Inspect enabled payment methods",
	}

	cmd.AddCommand(newMethodsListCommand())
	cmd.AddCommand(newMethodsGetCommand())

	return cmd
}

func newMethodsListCommand() *cobra.Command {
	var (
		from  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the payment methods enabled for your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			methods, err := client.Methods().List(cmd.Context(), from, limit, nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(methods)
			if done {
				return err
			}

			return renderMethodsTable(methods)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "cursor to start listing from")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "number of methods to fetch")

	return cmd
}

func newMethodsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get METHOD_ID",
		Short: "Show a single payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			method, err := client.Methods().Get(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			done, err := renderStructured(method)
			if done {
				return err
			}

			return renderMethodTable(method)
		},
	}
}

func renderMethodsTable(methods *paykit.MethodList) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Minimum", "Maximum", "Status")

	for _, method := range methods.Items {
		_ = table.Append(method.ID, method.Description, formatAmount(method.MinimumAmount), formatAmount(method.MaximumAmount), method.Status)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Showing %d of %d methods\n", len(methods.Items), methods.Count)

	return nil
}

func renderMethodTable(method *paykit.Method) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", method.ID)
	_ = table.Append("Description", method.Description)
	_ = table.Append("Minimum", formatAmount(method.MinimumAmount))
	_ = table.Append("Maximum", formatAmount(method.MaximumAmount))
	_ = table.Append("Status", method.Status)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
