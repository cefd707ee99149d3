package entity

import "fmt"

// UserRole is a closed set: each role maps to exactly one console dashboard.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleAttendant UserRole = "ATTENDANT"
	RoleCustomer  UserRole = "CUSTOMER"
)

type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"password_hash"`
	FullName     string   `json:"full_name"`
	Role         UserRole `json:"role"`

	// Customer-only fields
	VehicleNumber string `json:"vehicle_number,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
}

func (u User) String() string {
	if u.Role == RoleCustomer {
		return fmt.Sprintf("[%s] %s (%s) - vehicle %s (%s)", u.Role, u.FullName, u.Username, u.VehicleNumber, u.VehicleType)
	}
	return fmt.Sprintf("[%s] %s (%s)", u.Role, u.FullName, u.Username)
}
