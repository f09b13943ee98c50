// Package pkgerror carries client-facing errors through the application.
//
// Every rejection is an *Error holding the message the client sees, a Type,
// and a Code that the router maps to an HTTP status. The cause stays
// reachable through Unwrap so sentinels still match with errors.Is.
package pkgerror
