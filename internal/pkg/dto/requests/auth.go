package requests

// Login exchanges an identity-provider access token for an app session.
type Login struct {
	AccessToken string `json:"access_token" validate:"required"`
}
