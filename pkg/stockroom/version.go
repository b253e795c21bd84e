// Package stockroom exposes module-level metadata shared by the CLI.
package stockroom

// Version is the till CLI version, bumped on release.
const Version = "0.2.0"
