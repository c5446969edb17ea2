// Package lib holds modules that do not fit strictly into other layers.
//
// It contains shared utilities, background job processing
// (using Redis/Asynq), and the email client (Resend).
package lib
