// Package validation decodes request payloads and validates them.
//
// It uses the `validator` library to enforce rules defined in struct
// tags and turns failures into field errors named by their JSON path
// (e.g. "sender.name") so clients can locate the bad value.
package validation
