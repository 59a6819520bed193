// Package identity resolves the current user id from the configured access
// token. Authentication itself is handled by the external identity provider;
// this package only reads the user id the provider already issued.
package identity

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Provider reports the id of the signed-in user, if any. Sync is only
// meaningfully scoped once a user id is available.
type Provider interface {
	CurrentUserID() (string, bool)
}

type tokenProvider struct {
	userID string
}

// NewTokenProvider builds a Provider from a bearer access token. The user id
// is the token's `sub` claim; the signature is not verified here since the
// token is only trusted by the remote collaborator, never by this client.
func NewTokenProvider(accessToken string) Provider {
	userID, _ := parseUserIDFromJWT(accessToken)
	return &tokenProvider{userID: userID}
}

func (p *tokenProvider) CurrentUserID() (string, bool) {
	return p.userID, p.userID != ""
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
