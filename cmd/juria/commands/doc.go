// Package commands defines the juria CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register   Create an account on the backend
//   - login      Authenticate and store the session
//   - logout     Clear the stored session
//   - whoami     Print the logged-in username
//   - upload     Upload a PDF document
//   - list       List your uploaded documents
//   - view       Print a document's original and translated text
//   - chat       Ask questions about a document interactively
//
// # Implementation
//
// The root command loads configuration from the environment (a .env file
// works) and builds the dependency graph (session store, webhook client,
// services) before any subcommand runs, so handlers share one app context.
// Commands that need an authenticated user refuse to run without a stored
// session.
package commands
