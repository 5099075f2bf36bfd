// Package models defines the client's domain types: the public user
// identity and the authenticated session built from an API response.
package models
