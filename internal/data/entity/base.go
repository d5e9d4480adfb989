package entity

import (
	"time"
)

// Base carries the columns every table has.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
