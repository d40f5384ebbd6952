package domain

// StoreSettings is the storefront configuration edited on the settings page.
type StoreSettings struct {
	StoreName       string `json:"storeName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	Address         string `json:"address"`
	Currency        string `json:"currency"`
	CardPayments    bool   `json:"cardPayments"`
	BankTransfers   bool   `json:"bankTransfers"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

// DashboardStats is the overview card data on the dashboard.
type DashboardStats struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingOrders  int     `json:"pendingOrders"`
}

// SalesTrendPoint is one aggregated bucket of the sales trend chart.
type SalesTrendPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
