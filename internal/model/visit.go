package model

import "time"

// Visit aggregates how often a username has been greeted.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Visit struct {
	Username  string    `json:"username"`
	Count     int64     `json:"count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}
