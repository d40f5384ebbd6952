// Package export renders listings as CSV for the command line's --csv flag.
// The standard encoding/csv writer is all this needs.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// Customers writes a customer listing as CSV, header row first.
func Customers(w io.Writer, customers []domain.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "fullname", "email", "phone", "status", "date_joined"}); err != nil {
		return err
	}
	for _, c := range customers {
		record := []string{c.ID, c.FullName, c.Email, c.PhoneNumber, string(c.Status), c.DateJoined}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Orders writes an order listing as CSV, header row first.
func Orders(w io.Writer, orders []domain.Order) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "invoice", "customer", "total", "status", "payment_method", "payment_status", "order_time"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, o := range orders {
		record := []string{
			o.ID,
			o.InvoiceNumber,
			o.Customer.FullName,
			fmt.Sprintf("%.2f", o.TotalAmount),
			string(o.Status),
			o.PaymentMethod,
			string(o.PaymentStatus),
			o.OrderTime.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Products writes a product listing as CSV, header row first.
func Products(w io.Writer, products []domain.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "sku", "category", "price", "stock", "published"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.ID,
			p.Name,
			p.SKU,
			p.Category,
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d", p.Stock),
			fmt.Sprintf("%t", p.Published),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
