package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	ProfileID string    `json:"profile_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
