package model

import "time"

// Customer is a registered storefront account.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Mobile    string    `json:"mobile" db:"mobile"`
	JoinDate  time.Time `json:"joinDate" db:"join_date"`
}

// Name returns the combined display name.
func (c *Customer) Name() string {
	if c.FirstName == "" && c.LastName == "" {
		return c.Username
	}
	return c.FirstName + " " + c.LastName
}
