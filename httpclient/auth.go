package httpclient

import "net/http"

// AuthConfig holds the credentials sent with every request.
type AuthConfig struct {
	Username string
	Password string
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Username: username, Password: password}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	req.SetBasicAuth(a.Username, a.Password)
}
