// Package app wires application dependencies for the CLI.
//
// It loads runtime configuration from the environment and builds the
// concrete store, transport client and high-level services from Config,
// exposing them via the Wire struct for commands to use.
package app
