package models

import "time"

// AuditEvent is published to the audit queue after provisioning attempts.
// PasswordHash carries a bcrypt hash of the generated default password so the
// plaintext never leaves the HTTP response.
type AuditEvent struct {
	Event        string    `json:"event"`
	ActorID      string    `json:"actor_id"`
	SubjectEmail string    `json:"subject_email"`
	ClinicID     string    `json:"clinic_id,omitempty"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
