package service

import (
	"crypto/subtle"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
)

// AuthService checks callers against the single configured API key.
type AuthService struct {
	apiKey []byte
}

func NewAuthService(s *server.Server) *AuthService {
	return NewAuthServiceWithKey(s.Config.Auth.APIKey)
}

func NewAuthServiceWithKey(apiKey string) *AuthService {
	return &AuthService{apiKey: []byte(apiKey)}
}

// Authenticate reports whether credential equals the configured key.
// An empty credential or an empty configured key never matches.
func (a *AuthService) Authenticate(credential string) bool {
	if credential == "" || len(a.apiKey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), a.apiKey) == 1
}
