package domain

import "time"

// User is an operator of the back office.
type User struct {
	ID        string
	Name      string
	Token     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
