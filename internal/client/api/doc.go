// Package api is the HTTP client of the authentication API.
//
// # Endpoints
//
//	POST /auth/login     {"identifier","password"}
//	POST /auth/register  {"username","password"}
//	POST /auth/refresh   Authorization: Bearer <refresh token>
//
// A 2xx response carries {"user", "refresh_token", "access_token"?}; any
// other status carries {"error": {"message"}}.
//
// # Error Handling
//
// Failures fall into three classes callers can match with errors.Is/As:
// ErrNetwork (transport failure), *ServerError (non-2xx with a structured
// body) and ErrMalformedResponse (a body that does not decode). Message
// turns any of them into one line suitable for a screen's error slot.
package api
