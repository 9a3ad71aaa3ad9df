package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Session represents the locally stored authentication record
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// Claims holds display-only details read from an access token
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Token adapts the session to an oauth2 token; expiry is left unset.
func (s *Session) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    "Bearer",
	}
}

// Claims parses the access token as a JWT without verifying its signature.
func (s *Session) Claims() (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	ret := &Claims{}
	ret.Subject, _ = claims.GetSubject()
	if expiry, _ := claims.GetExpirationTime(); expiry != nil {
		ret.ExpiresAt = expiry.Time
	}
	return ret, nil
}

func encode(s *Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// decode returns nil for blank content; anything else has to be a JSON object.
func decode(data []byte) (*Session, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected JSON object", ErrDeserialization)
	}
	ret := &Session{}
	if err := json.Unmarshal(trimmed, ret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return ret, nil
}
