package middleware

import (
	"net/http"
	"regexp"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/errs"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/utils"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	// APIKeyHeader is the fallback credential header. Header canonicalisation
	// makes X-Api-Key and x-api-key equivalent.
	APIKeyHeader = "X-API-Key"

	AuthMethodBearer = "bearer"
	AuthMethodAPIKey = "api_key"

	// debugKeyPrefix is how many characters of a rejected key a debug block shows.
	debugKeyPrefix = 10
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.+)$`)

// Authenticator validates a presented credential.
type Authenticator interface {
	Authenticate(credential string) bool
}

// AuthMiddleware gates routes behind the static API key.
type AuthMiddleware struct {
	server        *server.Server
	authenticator Authenticator
}

func NewAuthMiddleware(s *server.Server, authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server:        s,
		authenticator: authenticator,
	}
}

// ExtractCredential returns the caller's credential and how it was sent.
//
// A "Bearer <token>" Authorization header wins (scheme is case-insensitive),
// then the X-API-Key header. Without either the credential is empty.
func ExtractCredential(r *http.Request) (credential, method string) {
	if m := bearerPattern.FindStringSubmatch(r.Header.Get(echo.HeaderAuthorization)); m != nil {
		return m[1], AuthMethodBearer
	}

	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key, AuthMethodAPIKey
	}

	return "", ""
}

// RequireAPIKey rejects requests whose credential does not match with
// 401 "Invalid API Key". The masked key and header names are added only
// when auth.expose_debug is on.
func (auth *AuthMiddleware) RequireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential, method := ExtractCredential(c.Request())

		if !auth.authenticator.Authenticate(credential) {
			GetLogger(c).Warn().
				Str("function", "RequireAPIKey").
				Str("auth_method", method).
				Bool("credential_present", credential != "").
				Msg("rejected request with invalid API key")

			if app := auth.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("AuthFailed", map[string]interface{}{
					"path":   c.Path(),
					"method": method,
				})
			}

			err := errs.NewUnauthorizedError(errs.MessageInvalidAPIKey, false)
			if auth.server.Config.Auth.ExposeDebug {
				err = err.WithDebug(&errs.AuthDebug{
					ReceivedKey:  utils.MaskKey(credential, debugKeyPrefix),
					HeadersFound: utils.SortedKeys(c.Request().Header),
				})
			}
			return err
		}

		c.Set(AuthMethodKey, method)

		return next(c)
	}
}
