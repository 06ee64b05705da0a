package models

import "time"

// Account defines a login identity based on the 'accounts' table.
// Staff accounts are created through signup approval; STUDENT and PARENT
// accounts are lazily provisioned during phone-based login.
type Account struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"admin@suhaktamgu.local"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name      string    `json:"name" db:"name" example:"김원장"`
	Role      RoleType  `json:"role" db:"role" example:"ADMIN"`
	Phone     *string   `json:"phone,omitempty" db:"phone" example:"01012345678"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicAccount is the caller-facing slice of an account.
type PublicAccount struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  RoleType `json:"role"`
}

// Public returns the fields safe to expose to clients.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}
