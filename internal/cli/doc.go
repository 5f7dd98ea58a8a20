// Package cli is responsible for parsing command-line arguments, expanding
// response files, and selecting the command to run. It translates CLI flags
// into the application's configuration and reports malformed invocations as
// an ExitError.
package cli
