// Package server holds the HTTP server configuration.
//
// The serve command handles the actual server startup; this package only
// defines the configuration structure embedded by core/config: the listen
// port and the API key protecting the webhook and status endpoints.
package server
