// Package credentials persists sealed credentials in the local vault,
// one row per (service, account) pair.
package credentials
