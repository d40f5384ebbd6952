package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/export"
)

func init() {
	for _, c := range []*cobra.Command{customersListCmd, ordersListCmd, productsListCmd, usersListCmd} {
		c.Flags().Int("page", 1, "page number")
		c.Flags().Int("limit", 20, "rows per page")
		c.Flags().String("search", "", "search term")
	}
	for _, c := range []*cobra.Command{customersListCmd, ordersListCmd} {
		c.Flags().Bool("csv", false, "emit CSV instead of a table")
	}
	productsListCmd.Flags().Bool("csv", false, "emit CSV instead of a table")

	customersListCmd.Flags().String("status", "", "filter: active, inactive or pending")
	customersListCmd.Flags().String("sort-by", "", "sort field")
	customersListCmd.Flags().String("sort-order", "", "asc or desc")

	ordersListCmd.Flags().String("status", "", "filter by order status")
	ordersPayCmd.Flags().Bool("wait", false, "poll until the payment settles")
	ordersUpdateCmd.Flags().String("status", "", "new order status")
	ordersUpdateCmd.Flags().String("tracking", "", "tracking number")

	productsListCmd.Flags().String("category", "", "filter by category")
	productsListCmd.Flags().String("published", "", "filter: true or false")
	productsCreateCmd.Flags().String("file", "", "JSON file with the product definition (required)")
	_ = productsCreateCmd.MarkFlagRequired("file")

	usersListCmd.Flags().String("role", "", "filter by role")

	statsCmd.Flags().Bool("trends", false, "show the sales trend series instead of the overview cards")
	statsCmd.Flags().String("period", "", "trend bucket size, e.g. daily, weekly, monthly")

	settingsSetCmd.Flags().String("store-name", "", "store display name")
	settingsSetCmd.Flags().String("contact-email", "", "support email address")
	settingsSetCmd.Flags().String("currency", "", "ISO currency code")
	settingsSetCmd.Flags().Bool("card-payments", false, "accept card payments")
	settingsSetCmd.Flags().Bool("bank-transfers", false, "accept bank transfers")
	settingsSetCmd.Flags().Bool("maintenance", false, "maintenance mode")

	customersCmd.AddCommand(customersListCmd, customersGetCmd, customersDeleteCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersUpdateCmd, ordersPayCmd, ordersDeleteCmd)
	productsCmd.AddCommand(productsListCmd, productsCreateCmd, productsDeleteCmd)
	usersCmd.AddCommand(usersListCmd, usersDeleteCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customer accounts",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		params := ports.CustomerListParams{}
		params.Page, _ = cmd.Flags().GetInt("page")
		params.Limit, _ = cmd.Flags().GetInt("limit")
		params.Search, _ = cmd.Flags().GetString("search")
		params.Status, _ = cmd.Flags().GetString("status")
		params.SortBy, _ = cmd.Flags().GetString("sort-by")
		params.SortOrder, _ = cmd.Flags().GetString("sort-order")

		customers, pagination, err := a.customers.List(cmd.Context(), params)
		if err != nil {
			return err
		}
		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			return export.Customers(os.Stdout, customers)
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tJOINED")
		for _, c := range customers {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.FullName, c.Email, c.Status, c.DateJoined)
		}
		tw.Flush()
		printPageFooter(pagination)
		return nil
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		customer, err := a.customers.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(customer)
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a customer account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := a.customers.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Customer %s deleted\n", args[0])
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		params := ports.OrderListParams{}
		params.Page, _ = cmd.Flags().GetInt("page")
		params.Limit, _ = cmd.Flags().GetInt("limit")
		params.Search, _ = cmd.Flags().GetString("search")
		params.Status, _ = cmd.Flags().GetString("status")

		orders, pagination, err := a.orders.List(cmd.Context(), params)
		if err != nil {
			return err
		}
		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			return export.Orders(os.Stdout, orders)
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tINVOICE\tCUSTOMER\tTOTAL\tSTATUS\tPAYMENT")
		for _, o := range orders {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
				o.ID, o.InvoiceNumber, o.Customer.FullName, o.TotalAmount, o.Status, o.PaymentStatus)
		}
		tw.Flush()
		printPageFooter(pagination)
		return nil
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		order, err := a.orders.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(order)
	},
}

var ordersUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an order's status or tracking number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		update := domain.OrderUpdate{}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			update.Status = domain.OrderStatus(status)
		}
		update.TrackingNumber, _ = cmd.Flags().GetString("tracking")

		order, err := a.orders.Update(cmd.Context(), args[0], update)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", order.ID, order.Status)
		return nil
	},
}

var ordersPayCmd = &cobra.Command{
	Use:   "pay ID",
	Short: "Trigger payment processing for an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		order, err := a.orders.ProcessPayment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		status := order.PaymentStatus
		if wait, _ := cmd.Flags().GetBool("wait"); wait && status == domain.PaymentPending {
			status, err = a.orders.AwaitPayment(cmd.Context(), args[0], 2*time.Second)
			if err != nil {
				return err
			}
		}
		fmt.Printf("Payment for order %s: %s\n", args[0], status)
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := a.orders.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Order %s deleted\n", args[0])
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalogue",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		params := ports.ProductListParams{}
		params.Page, _ = cmd.Flags().GetInt("page")
		params.Limit, _ = cmd.Flags().GetInt("limit")
		params.Search, _ = cmd.Flags().GetString("search")
		params.Category, _ = cmd.Flags().GetString("category")
		switch published, _ := cmd.Flags().GetString("published"); published {
		case "":
		case "true":
			t := true
			params.Published = &t
		case "false":
			f := false
			params.Published = &f
		default:
			return fmt.Errorf("--published must be true or false")
		}

		products, pagination, err := a.products.List(cmd.Context(), params)
		if err != nil {
			return err
		}
		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			return export.Products(os.Stdout, products)
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tPUBLISHED")
		for _, p := range products {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\t%t\n",
				p.ID, p.Name, p.Category, p.Price, p.Stock, p.Published)
		}
		tw.Flush()
		printPageFooter(pagination)
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product from a JSON definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var input domain.ProductInput
		if err := json.Unmarshal(raw, &input); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		product, err := a.products.Create(cmd.Context(), input)
		if err != nil {
			return err
		}
		fmt.Printf("Created product %s (%s)\n", product.Name, product.ID)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete one or more products",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if len(args) == 1 {
			if err := a.products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Product %s deleted\n", args[0])
			return nil
		}
		result, err := a.products.BulkDelete(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d of %d products\n", len(result.Deleted), len(args))
		for id, failErr := range result.Failed {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", id, failErr)
		}
		if len(result.Failed) > 0 {
			return fmt.Errorf("%d deletions failed", len(result.Failed))
		}
		return nil
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage back-office accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List back-office accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		params := ports.UserListParams{}
		params.Page, _ = cmd.Flags().GetInt("page")
		params.Limit, _ = cmd.Flags().GetInt("limit")
		params.Search, _ = cmd.Flags().GetString("search")
		params.Role, _ = cmd.Flags().GetString("role")

		users, pagination, err := a.users.List(cmd.Context(), params)
		if err != nil {
			return err
		}
		tw := newTable()
		fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tROLE\tSTATUS")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.Role, u.Status)
		}
		tw.Flush()
		printPageFooter(pagination)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a back-office account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := a.users.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("User %s deleted\n", args[0])
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		if trends, _ := cmd.Flags().GetBool("trends"); trends {
			period, _ := cmd.Flags().GetString("period")
			points, err := a.dashboard.SalesTrends(cmd.Context(), period)
			if err != nil {
				return err
			}
			return printJSON(points)
		}
		stats, err := a.dashboard.Stats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(stats)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and update store settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show store settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		settings, err := a.settings.Get(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update store settings",
	Long:  `Update store settings. Only the flags given change; everything else keeps its current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		current, err := a.settings.Get(cmd.Context())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("store-name") {
			current.StoreName, _ = cmd.Flags().GetString("store-name")
		}
		if cmd.Flags().Changed("contact-email") {
			current.ContactEmail, _ = cmd.Flags().GetString("contact-email")
		}
		if cmd.Flags().Changed("currency") {
			current.Currency, _ = cmd.Flags().GetString("currency")
		}
		if cmd.Flags().Changed("card-payments") {
			current.CardPayments, _ = cmd.Flags().GetBool("card-payments")
		}
		if cmd.Flags().Changed("bank-transfers") {
			current.BankTransfers, _ = cmd.Flags().GetBool("bank-transfers")
		}
		if cmd.Flags().Changed("maintenance") {
			current.MaintenanceMode, _ = cmd.Flags().GetBool("maintenance")
		}
		updated, err := a.settings.Update(cmd.Context(), *current)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printPageFooter(p ports.Pagination) {
	fmt.Printf("\nPage %d of %d (%d items)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
}
