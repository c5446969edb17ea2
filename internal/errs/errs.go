// Package errs defines the API error type and its constructors.
//
// Every failure the API reports is an *HTTPError so clients always
// receive the same body shape:
//
//	{"success": false, "message": "...", "errors": [...], "debug": {...}}
//
// Status and Code travel alongside for the error handler and the logs
// but are never serialised.
package errs
