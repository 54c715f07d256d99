package model

import "time"

// User is an account holder on the platform.
type User struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
