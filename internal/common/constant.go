// Package common contains shared constants and sentinel errors used across
// the Fictional Potato client.
package common

const (
	// AppName is the human-readable application name.
	AppName = "Fictional Potato"

	// CredentialService is the default service name under which the refresh
	// token is kept in the OS credential store.
	CredentialService = "fictional-potato"

	// CredentialAccount is the fixed account name of the refresh token entry.
	CredentialAccount = "refresh_token"

	// AuthorizationHeaderName carries the bearer token on refresh requests.
	AuthorizationHeaderName = "Authorization"
)
