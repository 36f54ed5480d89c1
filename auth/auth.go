package auth

import (
	"net/http"
	"strings"
	"time"

	"gigtax/models"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/golang-jwt/jwt/v4"
)

// mySigningKey should be a strong, randomly generated secret key,
// and it should be stored securely (e.g., in environment variables,
// a key management service, etc.), NOT hardcoded in your source code.
var mySigningKey = []byte("mySigningKey")

// SetSigningKey allows setting the key from outside the package.
func SetSigningKey(key []byte) {
	if len(key) > 0 {
		mySigningKey = key
	}
}

// Identity is the resolved caller: the authenticated user and the musician
// profile that owns their records. It is produced once by TokenFilter and
// passed explicitly into every service call.
type Identity struct {
	UserID     uint
	MusicianID uint
	Username   string
}

// Authenticator resolves an opaque token key to an Identity.
type Authenticator interface {
	Authenticate(key string) (*Identity, error)
}

// CustomClaims are the claims baked into a token key at issue time. The key
// is validated against the store, not by parsing, so the claims are only a
// convenience for inspection.
type CustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates the token key for the given user. The key is issued
// once at registration, persisted, and reused by every subsequent login.
func GenerateToken(user *models.User) (string, error) {
	claims := &CustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "gigtax",
			Subject:  "user-auth",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(mySigningKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

const identityAttribute = "identity"

// TokenFilter creates a go-restful FilterFunction that resolves the
// "Authorization: Token <key>" header to an Identity via the store and
// stashes it on the request for handlers to pick up.
func TokenFilter(authn Authenticator) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		authHeader := req.HeaderParameter("Authorization")
		if authHeader == "" {
			_ = resp.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": "Authorization header required"}, restful.MIME_JSON)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "token" {
			_ = resp.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": "Invalid authorization header format"}, restful.MIME_JSON)
			return
		}

		identity, err := authn.Authenticate(parts[1])
		if err != nil {
			_ = resp.WriteHeaderAndJson(http.StatusUnauthorized, map[string]string{"message": "Invalid token"}, restful.MIME_JSON)
			return
		}

		req.SetAttribute(identityAttribute, *identity)

		chain.ProcessFilter(req, resp)
	}
}

// IdentityFromRequest extracts the Identity set by TokenFilter.
func IdentityFromRequest(req *restful.Request) (Identity, bool) {
	attr := req.Attribute(identityAttribute)
	if attr == nil {
		return Identity{}, false
	}
	identity, ok := attr.(Identity)
	return identity, ok
}

// SetIdentity stashes an identity on a request. Exported for tests that
// exercise handlers without the full filter chain.
func SetIdentity(req *restful.Request, identity Identity) {
	req.SetAttribute(identityAttribute, identity)
}
