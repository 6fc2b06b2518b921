package identity

import (
	"bytes"
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type identityProviderClient struct {
	BaseUrl    string
	ServiceKey string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewIdentityProviderClient(internalConfig *config.InternalConfig) IdentityProviderClient {
	rps := internalConfig.IdentityProvider.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &identityProviderClient{
		BaseUrl:    strings.TrimSuffix(internalConfig.IdentityProvider.BaseUrl, "/"),
		ServiceKey: internalConfig.IdentityProvider.ServiceKey,
		HTTPClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *identityProviderClient) CreateUser(ctx context.Context, request *requests.CreateIdentityUser) (*models.IdentityUser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrIdentityCreate(err)
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/admin/users", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAdminHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrIdentityCreate(fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	identityUser := new(models.IdentityUser)
	err = json.NewDecoder(resp.Body).Decode(identityUser)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	return identityUser, nil
}

func (c *identityProviderClient) DeleteUser(ctx context.Context, userID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrIdentityDelete(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/admin/users/%s", c.BaseUrl, userID), nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAdminHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return exceptions.ErrIdentityDelete(fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	return nil
}

func (c *identityProviderClient) FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrIdentityList(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/admin/users", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAdminHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrIdentityList(fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	var listResponse struct {
		Users []models.IdentityUser `json:"users"`
	}
	err = json.NewDecoder(resp.Body).Decode(&listResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	for i := range listResponse.Users {
		if strings.EqualFold(listResponse.Users[i].Email, email) {
			return &listResponse.Users[i], nil
		}
	}

	return nil, nil
}

func (c *identityProviderClient) VerifyAccessToken(ctx context.Context, accessToken string) (*models.IdentityUser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrInvalidCredential(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/user", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrInvalidCredential(fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	identityUser := new(models.IdentityUser)
	err = json.NewDecoder(resp.Body).Decode(identityUser)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	return identityUser, nil
}

func (c *identityProviderClient) setAdminHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+c.ServiceKey)
}
