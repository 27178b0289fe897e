package sqlite

import "time"

// Session is the stored login for the single local user
type Session struct {
	Email      string
	Token      string
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
