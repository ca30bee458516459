package domain

import "time"

// Vendor is an entry in the supplier directory.
type Vendor struct {
	ID        string
	Name      string
	AvatarURL string
	Address   string
	Category  string
	IsActive  bool
	CreatedAt time.Time
}
