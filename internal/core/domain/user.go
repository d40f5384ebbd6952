package domain

// Role values accepted by the Trendora API.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin, RoleManager:
		return true
	}
	return false
}

// Avatar is an uploaded profile image reference.
type Avatar struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// User models an authenticated actor: the profile returned by the server on
// login and on GET /auth/profile.
type User struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	FullName    string  `json:"fullname"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      *Avatar `json:"avatar,omitempty"`
}

// StaffUser is a back-office account row from GET /auth/users. It carries a
// couple of listing-only fields the session profile does not.
type StaffUser struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	DateJoined  string `json:"dateJoined"`
	Avatar      string `json:"avatar,omitempty"`
}

// Registration is the payload submitted to the register endpoints. Password
// travels to the server in cleartext over TLS; it is never stored locally.
type Registration struct {
	Username    string  `json:"username" validate:"required,min=3"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=customer staff admin manager"`
	FullName    string  `json:"fullname" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Avatar      *Avatar `json:"avatar,omitempty"`
}

// UserUpdate is a partial profile change merged into the session user after
// an out-of-band edit. Nil fields are left untouched.
type UserUpdate struct {
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"fullname,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Avatar      *Avatar `json:"avatar,omitempty"`
}
