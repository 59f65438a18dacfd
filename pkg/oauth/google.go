package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/pkg/clients"
)

const (
	ProviderGoogle = "google"
	userInfoURL    = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var ErrUserInfo = errors.New("unable to load user info")

type userInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

type Google struct {
	config *oauth2.Config
	client clients.HTTPClientI
}

func NewGoogle(clientID, clientSecret, callbackURL string, client clients.HTTPClientI) *Google {
	return &Google{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
		client: client,
	}
}

func NewState() string {
	return uuid.NewString()
}

func (g *Google) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for a token and loads the Google profile with it.
// Unverified emails are dropped so they cannot be used to take over a local account.
func (g *Google) Exchange(ctx context.Context, code string) (*domain.ExternalProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange failed", domain.ErrUnauthorized)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token.AccessToken)
	status, body, err := g.client.Get(ctx, userInfoURL, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUserInfo, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUserInfo, status)
	}

	var info userInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUserInfo, err)
	}
	profile := &domain.ExternalProfile{
		Provider:  ProviderGoogle,
		SubjectID: info.ID,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
	}
	if info.VerifiedEmail {
		profile.Email = info.Email
	}
	return profile, nil
}
