// Package cli turns command-line arguments into an app.Config, printing
// usage and mapping failures to exit codes.
package cli
