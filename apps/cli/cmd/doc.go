// Package cmd implements the testy CLI commands using Cobra.
//
// Available commands:
//   - selfcheck: Run the built-in suites and check their failure counts
//   - compare: Compare two JSON documents structurally or within a tolerance
//   - history: Show runs recorded in a history database
//   - list: Display the built-in suites and their cases
//   - validate: Check configuration files against the schema
//   - init: Write a default configuration file
//   - version: Show testy version information
package cmd
