// Package cli implements the command-line interface for gw-dailies-bot.
//
// The cli package provides the Cobra-based CLI: flag parsing, configuration
// validation (output format, simulated time, Discord credentials), and mode
// selection. Discord mode opens a gateway session and posts embeds on the
// daily schedule; the textual formats print the same bulletin to stdout.
// All configuration errors are rejected here, before any network activity.
package cli
