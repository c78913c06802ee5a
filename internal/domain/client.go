package domain

import "time"

// Client represents a salon client record linked to a user identity.
// Created lazily on the first booking if no record exists for the identity.
type Client struct {
	ID     int64
	UserID int64

	Name    string
	Phone   *string
	Address *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
