// Package app contains the core application logic. It defines the validated
// run configuration and the App that executes the bundle and create-rsp
// commands, decoupled from argument parsing and process exit handling.
package app
