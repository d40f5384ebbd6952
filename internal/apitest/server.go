// Package apitest runs an in-process Trendora API double for tests: real
// HTTP, bcrypt-checked logins, HS256-signed bearer tokens, and paged
// fixtures. It implements just enough of the documented contract for the
// SDK to be exercised end to end without a deployed backend.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

const tokenTTL = time.Hour

type account struct {
	user         domain.User
	passwordHash string
}

// Server is the fake API. All exported fields and methods are safe for
// concurrent use by the client under test.
type Server struct {
	httpServer *httptest.Server
	secret     string

	mu        sync.Mutex
	accounts  map[string]*account // keyed by email
	customers []domain.Customer
	orders    []domain.Order
	products  []domain.Product
	settings  domain.StoreSettings

	// Counters let tests assert which endpoints were (not) hit.
	ProfileRequests int
	RefreshRequests int

	failRefresh bool
}

// New starts the fake API with an empty fixture set.
func New() *Server {
	s := &Server{
		secret:   "apitest-secret",
		accounts: make(map[string]*account),
		settings: domain.StoreSettings{StoreName: "Trendora", Currency: "USD"},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	e.POST("/auth/login", s.login(false))
	e.POST("/customers/login", s.login(true))
	e.POST("/auth/register", s.registerStaff)
	e.POST("/customers/register", s.registerCustomer)
	e.POST("/auth/refresh-token", s.refreshToken)

	auth := s.authMiddleware()
	e.GET("/auth/profile", s.profile, auth)
	e.GET("/auth/users", s.listUsers, auth)
	e.DELETE("/auth/users/:id", s.deleteUser, auth)

	e.GET("/customers", s.listCustomers, auth)
	e.GET("/customers/:id", s.getCustomer, auth)
	e.PUT("/customers/:id", s.updateCustomer, auth)
	e.DELETE("/customers/:id", s.deleteCustomer, auth)

	e.GET("/orders", s.listOrders, auth)
	e.POST("/orders", s.createOrder, auth)
	e.GET("/orders/:id", s.getOrder, auth)
	e.PUT("/orders/:id", s.updateOrder, auth)
	e.DELETE("/orders/:id", s.deleteOrder, auth)
	e.POST("/orders/:id/process-payment", s.processPayment, auth)

	e.GET("/products", s.listProducts, auth)
	e.POST("/products", s.createProduct, auth)
	e.PUT("/products/:id", s.updateProduct, auth)
	e.DELETE("/products/:id", s.deleteProduct, auth)

	e.GET("/dashboard/stats", s.dashboardStats, auth)
	e.GET("/dashboard/sales-trends", s.salesTrends, auth)

	e.GET("/settings", s.getSettings, auth)
	e.PUT("/settings", s.updateSettings, auth)

	s.httpServer = httptest.NewServer(e)
	return s
}

// URL is the server's base address.
func (s *Server) URL() string { return s.httpServer.URL }

// Close shuts the server down.
func (s *Server) Close() { s.httpServer.Close() }

// SeedUser registers an account and returns its profile. MinCost keeps the
// hash cheap; the tests exercise the flow, not the work factor.
func (s *Server) SeedUser(email, password, role string) domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.User{
		ID:       fmt.Sprintf("u-%d", len(s.accounts)+1),
		Username: strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Role:     role,
		FullName: "Seeded User",
	}
	s.accounts[email] = &account{user: u, passwordHash: string(hash)}
	return u
}

// IssueToken signs a valid token for email, for tests that pre-populate the
// credential store instead of logging in.
func (s *Server) IssueToken(email string) string {
	token, err := s.signToken(email)
	if err != nil {
		panic(err)
	}
	return token
}

// SeedCustomers replaces the customer fixtures.
func (s *Server) SeedCustomers(customers []domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = customers
}

// SeedOrders replaces the order fixtures.
func (s *Server) SeedOrders(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// SeedProducts replaces the product fixtures.
func (s *Server) SeedProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

// Products returns a copy of the current product fixtures.
func (s *Server) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SetPaymentStatus flips an order's payment status, simulating the payment
// processor settling out of band.
func (s *Server) SetPaymentStatus(orderID string, status domain.PaymentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].PaymentStatus = status
		}
	}
}

func (s *Server) signToken(email string) (string, error) {
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("no such account: %s", email)
	}
	claims := jwt.MapClaims{
		"email": email,
		"role":  acct.user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		// Nanosecond issued-at keeps back-to-back tokens distinct.
		"iat": time.Now().UnixNano(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

// authMiddleware validates the bearer token and stashes the account email.
func (s *Server) authMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing authorization header"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid authorization header"})
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(s.secret), nil
			})
			if err != nil || !tkn.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			}

			email, _ := claims["email"].(string)
			c.Set("email", email)
			return next(c)
		}
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(customerEndpoint bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req credentials
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
		}

		s.mu.Lock()
		acct, ok := s.accounts[req.Email]
		s.mu.Unlock()
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		}
		if customerEndpoint != (acct.user.Role == domain.RoleCustomer) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "wrong login endpoint for role"})
		}
		if bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(req.Password)) != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		}

		token, err := s.signToken(req.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "token signing failed"})
		}
		return c.JSON(http.StatusOK, map[string]any{"token": token, "data": acct.user})
	}
}

func (s *Server) registerStaff(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if reg.Role == domain.RoleCustomer {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "customers register elsewhere"})
	}
	s.seedFromRegistration(reg)
	// Staff accounts need separate activation; no session is granted.
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "account created, pending activation",
	})
}

func (s *Server) registerCustomer(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	u := s.seedFromRegistration(reg)
	token, err := s.signToken(reg.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "token signing failed"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"token":   token,
		"data":    u,
	})
}

func (s *Server) seedFromRegistration(reg domain.Registration) domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.MinCost)
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{
		ID:          fmt.Sprintf("u-%d", len(s.accounts)+1),
		Username:    reg.Username,
		Email:       reg.Email,
		Role:        reg.Role,
		FullName:    reg.FullName,
		PhoneNumber: reg.PhoneNumber,
	}
	s.accounts[reg.Email] = &account{user: u, passwordHash: string(hash)}
	return u
}

// SetFailRefresh makes the refresh endpoint reject every token, simulating
// server-side session revocation.
func (s *Server) SetFailRefresh(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRefresh = fail
}

func (s *Server) refreshToken(c echo.Context) error {
	s.mu.Lock()
	s.RefreshRequests++
	fail := s.failRefresh
	s.mu.Unlock()

	if fail {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "session revoked"})
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(req.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "refresh token invalid"})
	}

	email, _ := claims["email"].(string)
	fresh, err := s.signToken(email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unknown account"})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": fresh})
}

func (s *Server) profile(c echo.Context) error {
	s.mu.Lock()
	s.ProfileRequests++
	email, _ := c.Get("email").(string)
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unknown account"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "user": acct.user})
}

// page slices a fixture list according to page/limit query parameters and
// returns the slice bounds plus the pagination envelope.
func page(c echo.Context, total int) (lo, hi int, pagination map[string]int) {
	pageNo, _ := strconv.Atoi(c.QueryParam("page"))
	if pageNo < 1 {
		pageNo = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}
	lo = (pageNo - 1) * limit
	if lo > total {
		lo = total
	}
	hi = lo + limit
	if hi > total {
		hi = total
	}
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return lo, hi, map[string]int{
		"currentPage": pageNo,
		"totalPages":  totalPages,
		"totalItems":  total,
	}
}

func (s *Server) listCustomers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.customers
	if search := c.QueryParam("search"); search != "" {
		filtered = nil
		for _, cu := range s.customers {
			if strings.Contains(strings.ToLower(cu.FullName), strings.ToLower(search)) {
				filtered = append(filtered, cu)
			}
		}
	}
	lo, hi, pagination := page(c, len(filtered))
	return c.JSON(http.StatusOK, map[string]any{"data": filtered[lo:hi], "pagination": pagination})
}

func (s *Server) getCustomer(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cu := range s.customers {
		if cu.ID == c.Param("id") {
			return c.JSON(http.StatusOK, map[string]any{"data": cu})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
}

func (s *Server) updateCustomer(c echo.Context) error {
	var changes map[string]any
	if err := c.Bind(&changes); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.Param("id") {
			if v, ok := changes["fullname"].(string); ok {
				s.customers[i].FullName = v
			}
			if v, ok := changes["status"].(string); ok {
				s.customers[i].Status = domain.CustomerStatus(v)
			}
			return c.JSON(http.StatusOK, map[string]any{"data": s.customers[i]})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
}

func (s *Server) deleteCustomer(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.Param("id") {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return c.JSON(http.StatusOK, map[string]any{"success": true})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var staff []domain.StaffUser
	for _, acct := range s.accounts {
		if acct.user.Role == domain.RoleCustomer {
			continue
		}
		if role := c.QueryParam("role"); role != "" && acct.user.Role != role {
			continue
		}
		staff = append(staff, domain.StaffUser{
			ID:       acct.user.ID,
			Username: acct.user.Username,
			FullName: acct.user.FullName,
			Email:    acct.user.Email,
			Role:     acct.user.Role,
			Status:   "active",
		})
	}
	lo, hi, pagination := page(c, len(staff))
	return c.JSON(http.StatusOK, map[string]any{"data": staff[lo:hi], "pagination": pagination})
}

func (s *Server) deleteUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, acct := range s.accounts {
		if acct.user.ID == c.Param("id") {
			delete(s.accounts, email)
			return c.JSON(http.StatusOK, map[string]any{"success": true})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "user not found"})
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.orders
	if status := c.QueryParam("status"); status != "" {
		filtered = nil
		for _, o := range s.orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
	}
	lo, hi, pagination := page(c, len(filtered))
	return c.JSON(http.StatusOK, map[string]any{"data": filtered[lo:hi], "pagination": pagination})
}

func (s *Server) createOrder(c echo.Context) error {
	var req struct {
		Items           []domain.OrderItem     `json:"items"`
		PaymentMethod   string                 `json:"paymentMethod"`
		ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
		PaymentIntentID string                 `json:"paymentIntentId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Idempotent replay: a repeated key returns the original order.
	if key := c.Request().Header.Get("Idempotency-Key"); key != "" {
		for _, o := range s.orders {
			if o.PaymentIntentID == "idem:"+key {
				return c.JSON(http.StatusOK, map[string]any{"data": o, "clientSecret": "cs_replay"})
			}
		}
	}

	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	order := domain.Order{
		ID:              fmt.Sprintf("o-%d", len(s.orders)+1),
		InvoiceNumber:   fmt.Sprintf("INV-%04d", len(s.orders)+1),
		Items:           req.Items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		Status:          domain.OrderPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentPending,
		OrderTime:       time.Now().UTC(),
		CreatedAt:       time.Now().UTC(),
	}
	if key := c.Request().Header.Get("Idempotency-Key"); key != "" {
		order.PaymentIntentID = "idem:" + key
	}
	s.orders = append([]domain.Order{order}, s.orders...)

	clientSecret := ""
	if req.PaymentMethod == domain.PaymentMethodCard {
		clientSecret = "cs_" + order.ID
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": order, "clientSecret": clientSecret})
}

func (s *Server) getOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == c.Param("id") {
			return c.JSON(http.StatusOK, map[string]any{"data": o})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "order not found"})
}

func (s *Server) updateOrder(c echo.Context) error {
	var update domain.OrderUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			if update.Status != "" {
				if !s.orders[i].Status.CanTransitionTo(update.Status) {
					return c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": "invalid status transition"})
				}
				s.orders[i].Status = update.Status
			}
			if update.TrackingNumber != "" {
				s.orders[i].TrackingNumber = update.TrackingNumber
			}
			return c.JSON(http.StatusOK, map[string]any{"data": s.orders[i]})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "order not found"})
}

func (s *Server) deleteOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return c.JSON(http.StatusOK, map[string]any{"success": true})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "order not found"})
}

func (s *Server) processPayment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			s.orders[i].PaymentStatus = domain.PaymentCompleted
			return c.JSON(http.StatusOK, map[string]any{"data": s.orders[i]})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "order not found"})
}

func (s *Server) listProducts(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.products
	if category := c.QueryParam("category"); category != "" {
		filtered = nil
		for _, p := range s.products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}
	lo, hi, pagination := page(c, len(filtered))
	return c.JSON(http.StatusOK, map[string]any{"data": filtered[lo:hi], "pagination": pagination})
}

func (s *Server) createProduct(c echo.Context) error {
	var input domain.ProductInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if input.Price < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": "price must be positive"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Product{
		ID:          fmt.Sprintf("p-%d", len(s.products)+1),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		SKU:         input.SKU,
		Images:      input.Images,
		Tags:        input.Tags,
		Variants:    input.Variants,
		CreatedAt:   time.Now().UTC(),
	}
	s.products = append([]domain.Product{p}, s.products...)
	return c.JSON(http.StatusCreated, map[string]any{"data": p})
}

func (s *Server) updateProduct(c echo.Context) error {
	var input domain.ProductInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == c.Param("id") {
			if input.Name != "" {
				s.products[i].Name = input.Name
			}
			if input.Price != 0 {
				s.products[i].Price = input.Price
			}
			if input.Published != nil {
				s.products[i].Published = *input.Published
			}
			s.products[i].UpdatedAt = time.Now().UTC()
			return c.JSON(http.StatusOK, map[string]any{"data": s.products[i]})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "product not found"})
}

func (s *Server) deleteProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == c.Param("id") {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return c.JSON(http.StatusOK, map[string]any{"success": true})
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "product not found"})
}

func (s *Server) dashboardStats(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		TotalOrders:    len(s.orders),
		TotalCustomers: len(s.customers),
		TotalProducts:  len(s.products),
	}
	for _, o := range s.orders {
		stats.TotalRevenue += o.TotalAmount
		if o.Status == domain.OrderPending {
			stats.PendingOrders++
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": stats})
}

func (s *Server) salesTrends(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	point := domain.SalesTrendPoint{Period: c.QueryParam("period"), Orders: len(s.orders)}
	for _, o := range s.orders {
		point.Revenue += o.TotalAmount
	}
	return c.JSON(http.StatusOK, map[string]any{"data": []domain.SalesTrendPoint{point}})
}

func (s *Server) getSettings(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]any{"data": s.settings})
}

func (s *Server) updateSettings(c echo.Context) error {
	var settings domain.StoreSettings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return c.JSON(http.StatusOK, map[string]any{"data": s.settings})
}
