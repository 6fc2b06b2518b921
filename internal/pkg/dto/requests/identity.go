package requests

// CreateIdentityUser is the payload for the identity provider's
// administrative create-user endpoint.
type CreateIdentityUser struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}
