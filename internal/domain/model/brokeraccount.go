package model

import "time"

// BrokerAccount links a user to an external brokerage. Credentials holds the
// encrypted blob produced by the secrets package; it is opaque here and in
// the store, and only the application layer ever decrypts it.
type BrokerAccount struct {
	ID          string
	UserID      int64
	Broker      string
	Credentials string
	Paper       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
