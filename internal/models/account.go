package models

import "time"

// Account is the database representation of an account row.
type Account struct {
	AccountID     string    `db:"account_id"`
	Name          string    `db:"name"`
	Surname       string    `db:"surname"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
