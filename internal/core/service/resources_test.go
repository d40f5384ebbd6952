package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/api"
)

// loginStaff authenticates the harness as a seeded staff account.
func loginStaff(t *testing.T, h *harness) {
	t.Helper()
	h.srv.SeedUser("ops@trendora.dev", "pw-longenough", domain.RoleStaff)
	if _, err := h.session.Login(context.Background(), "ops@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func seedCustomers(h *harness, n int) {
	customers := make([]domain.Customer, n)
	for i := range customers {
		customers[i] = domain.Customer{
			ID:       fmt.Sprintf("c-%d", i+1),
			FullName: fmt.Sprintf("Customer %d", i+1),
			Email:    fmt.Sprintf("c%d@example.com", i+1),
			Status:   domain.CustomerActive,
		}
	}
	h.srv.SeedCustomers(customers)
}

func TestCustomerService_ListPagination(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	seedCustomers(h, 25)

	svc := NewCustomerService(h.client, zerolog.Nop())

	customers, pagination, err := svc.List(context.Background(), ports.CustomerListParams{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(customers) != 10 {
		t.Fatalf("expected 10 customers on page 2, got %d", len(customers))
	}
	if customers[0].ID != "c-11" {
		t.Fatalf("wrong page slice, first id %s", customers[0].ID)
	}
	if pagination.TotalItems != 25 || pagination.TotalPages != 3 || pagination.CurrentPage != 2 {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestCustomerService_SearchPassthrough(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedCustomers([]domain.Customer{
		{ID: "c-1", FullName: "Ada Lovelace"},
		{ID: "c-2", FullName: "Grace Hopper"},
	})

	svc := NewCustomerService(h.client, zerolog.Nop())
	customers, _, err := svc.List(context.Background(), ports.CustomerListParams{Search: "ada"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != "c-1" {
		t.Fatalf("search filter not applied: %+v", customers)
	}
}

func TestCustomerService_GetUpdateDelete(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	seedCustomers(h, 2)

	svc := NewCustomerService(h.client, zerolog.Nop())

	c, err := svc.Get(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.FullName != "Customer 1" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	updated, err := svc.Update(context.Background(), "c-1", map[string]any{"status": "inactive"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.CustomerInactive {
		t.Fatalf("status not updated: %+v", updated)
	}

	if err := svc.Delete(context.Background(), "c-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "c-2"); !api.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestOrderService_CreateReturnsClientSecret(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)

	svc := NewOrderService(h.client, zerolog.Nop())
	result, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []domain.OrderItem{
			{Product: "p-1", Name: "Mug", Price: 12.5, Quantity: 2},
		},
		PaymentMethod: domain.PaymentMethodCard,
		ShippingAddress: domain.ShippingAddress{
			Street: "1 Main St", City: "Lagos", Country: "NG",
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.ClientSecret == "" {
		t.Fatalf("card order must return a client secret")
	}
	if result.Order.TotalAmount != 25 {
		t.Fatalf("unexpected total: %v", result.Order.TotalAmount)
	}
	if result.Order.Status != domain.OrderPending || result.Order.PaymentStatus != domain.PaymentPending {
		t.Fatalf("new order should be pending: %+v", result.Order)
	}
}

func TestOrderService_UpdateRejectsInvalidTransition(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedOrders([]domain.Order{{ID: "o-1", Status: domain.OrderPending}})

	svc := NewOrderService(h.client, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "o-1", domain.OrderUpdate{Status: domain.OrderDelivered}); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	order, err := svc.Update(context.Background(), "o-1", domain.OrderUpdate{Status: domain.OrderProcessing})
	if err != nil {
		t.Fatalf("valid transition rejected: %v", err)
	}
	if order.Status != domain.OrderProcessing {
		t.Fatalf("status not applied: %+v", order)
	}
}

func TestOrderService_ProcessPayment(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedOrders([]domain.Order{{ID: "o-1", Status: domain.OrderPending, PaymentStatus: domain.PaymentPending}})

	svc := NewOrderService(h.client, zerolog.Nop())
	order, err := svc.ProcessPayment(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("process payment: %v", err)
	}
	if order.PaymentStatus != domain.PaymentCompleted {
		t.Fatalf("expected completed payment, got %s", order.PaymentStatus)
	}
}

func TestOrderService_AwaitPayment(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedOrders([]domain.Order{{ID: "o-1", PaymentStatus: domain.PaymentPending}})

	svc := NewOrderService(h.client, zerolog.Nop())

	go func() {
		time.Sleep(30 * time.Millisecond)
		h.srv.SetPaymentStatus("o-1", domain.PaymentCompleted)
	}()

	status, err := svc.AwaitPayment(context.Background(), "o-1", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if status != domain.PaymentCompleted {
		t.Fatalf("expected completed, got %s", status)
	}
}

func TestOrderService_AwaitPaymentHonoursContext(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedOrders([]domain.Order{{ID: "o-1", PaymentStatus: domain.PaymentPending}})

	svc := NewOrderService(h.client, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := svc.AwaitPayment(ctx, "o-1", 10*time.Millisecond); err == nil {
		t.Fatalf("expected context deadline error")
	}
}

func TestProductService_BulkDelete(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)

	products := make([]domain.Product, 9)
	ids := make([]string, 0, 10)
	for i := range products {
		products[i] = domain.Product{ID: fmt.Sprintf("p-%d", i+1), Name: fmt.Sprintf("Product %d", i+1)}
		ids = append(ids, products[i].ID)
	}
	h.srv.SeedProducts(products)
	ids = append(ids, "p-missing") // one failure among the batch

	svc := NewProductService(h.client, zerolog.Nop())
	result, err := svc.BulkDelete(context.Background(), ids)
	if err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	if len(result.Deleted) != 9 {
		t.Fatalf("expected 9 deletions, got %d", len(result.Deleted))
	}
	if len(result.Failed) != 1 || result.Failed["p-missing"] == nil {
		t.Fatalf("expected one recorded failure, got %+v", result.Failed)
	}
	if remaining := h.srv.Products(); len(remaining) != 0 {
		t.Fatalf("expected all seeded products deleted, %d remain", len(remaining))
	}
}

func TestProductService_CreateValidationFailure(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)

	svc := NewProductService(h.client, zerolog.Nop())
	_, err := svc.Create(context.Background(), domain.ProductInput{Name: "Broken", Price: -5})
	if api.KindOf(err) != api.FailureValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestUserService_ListFiltersCustomers(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedUser("shopper@example.com", "pw-longenough", domain.RoleCustomer)
	h.srv.SeedUser("admin@trendora.dev", "pw-longenough", domain.RoleAdmin)

	svc := NewUserService(h.client, zerolog.Nop())
	users, _, err := svc.List(context.Background(), ports.UserListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, u := range users {
		if u.Role == domain.RoleCustomer {
			t.Fatalf("customer accounts must not appear in the staff listing")
		}
	}
}

func TestUserService_Delete(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	admin := h.srv.SeedUser("admin@trendora.dev", "pw-longenough", domain.RoleAdmin)

	svc := NewUserService(h.client, zerolog.Nop())
	if err := svc.Delete(context.Background(), admin.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	users, _, err := svc.List(context.Background(), ports.UserListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, u := range users {
		if u.ID == admin.ID {
			t.Fatalf("deleted account still listed: %+v", u)
		}
	}

	if err := svc.Delete(context.Background(), admin.ID); !api.IsNotFound(err) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}
}

func TestSettingsService_RoundTrip(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)

	svc := NewSettingsService(h.client, zerolog.Nop())
	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	settings.StoreName = "Trendora EU"
	settings.Currency = "EUR"

	updated, err := svc.Update(context.Background(), *settings)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.StoreName != "Trendora EU" || updated.Currency != "EUR" {
		t.Fatalf("settings not applied: %+v", updated)
	}
}

func TestDashboardService_Stats(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	seedCustomers(h, 3)
	h.srv.SeedOrders([]domain.Order{
		{ID: "o-1", TotalAmount: 100, Status: domain.OrderPending},
		{ID: "o-2", TotalAmount: 50, Status: domain.OrderDelivered},
	})

	svc := NewDashboardService(h.client)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 2 || stats.TotalCustomers != 3 || stats.TotalRevenue != 150 || stats.PendingOrders != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDashboardService_SalesTrends(t *testing.T) {
	h := newHarness(t)
	loginStaff(t, h)
	h.srv.SeedOrders([]domain.Order{
		{ID: "o-1", TotalAmount: 100},
		{ID: "o-2", TotalAmount: 50},
	})

	svc := NewDashboardService(h.client)
	points, err := svc.SalesTrends(context.Background(), "monthly")
	if err != nil {
		t.Fatalf("sales trends: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected one aggregated point, got %d", len(points))
	}
	if points[0].Period != "monthly" {
		t.Fatalf("period parameter not passed through, got %q", points[0].Period)
	}
	if points[0].Revenue != 150 || points[0].Orders != 2 {
		t.Fatalf("unexpected aggregation: %+v", points[0])
	}
}

func TestResourceCall_RequiresAuthentication(t *testing.T) {
	h := newHarness(t)

	svc := NewCustomerService(h.client, zerolog.Nop())
	_, _, err := svc.List(context.Background(), ports.CustomerListParams{})
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized without a session, got %v", err)
	}
}
