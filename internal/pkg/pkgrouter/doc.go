// Package pkgrouter is the HTTP layer shared by the modules.
//
// JSON endpoints return (payload, error); errors are mapped through
// pkgerror to a status and an {"error": msg} body. Routes may add their own
// middleware, such as MiddlewareBodyLimit, after the shared stack.
package pkgrouter
