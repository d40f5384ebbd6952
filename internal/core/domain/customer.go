package domain

// CustomerStatus represents the account standing of a shopper.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerPending  CustomerStatus = "pending"
)

// ShippingAddress is a delivery destination.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer is a shopper account as listed and edited in the back office.
type Customer struct {
	ID              string          `json:"_id"`
	FullName        string          `json:"fullname"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phoneNumber"`
	Role            string          `json:"role"`
	DateJoined      string          `json:"dateJoined"`
	Orders          []string        `json:"orders,omitempty"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Status          CustomerStatus  `json:"status"`
	Avatar          *Avatar         `json:"avatar,omitempty"`
}
