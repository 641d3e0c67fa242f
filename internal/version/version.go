// Package version provides the version of the application.
package version

// Version is the version of the application. Set at build time.
var Version = "unknown"
