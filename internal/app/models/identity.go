package models

import "time"

// IdentityUser is the identity provider's view of an auth user. Its
// existence is authoritative there; this service only mirrors the fields it
// needs for provisioning decisions.
type IdentityUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}
