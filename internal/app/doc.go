// Package app wires the application together: it configures the logger,
// loads a sheet file, drives evaluation and emits the selected report
// format.
package app
