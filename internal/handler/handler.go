// Package handler is the HTTP layer that sits right after the router.
//
// It decodes and validates request bodies using the validation package,
// calls the service layer, and writes JSON responses. Errors are returned
// to the global error handler, never written here.
package handler
