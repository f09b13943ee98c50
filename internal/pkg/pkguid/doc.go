// Package pkguid generates the correlation IDs attached to requests.
//
// NewStringID selects UUIDv7 or Snowflake by name so the choice can live in
// configuration.
package pkguid
