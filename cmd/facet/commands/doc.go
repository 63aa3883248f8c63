// Package commands defines the facet CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - info       Print the header of an EDF recording
//   - triggers   Detect artifact triggers on the stim channel
//   - evaluate   Run the evaluation measures described by a run config
//   - results    List and show stored evaluation runs
//
// # Implementation
//
// The root command resolves the facet home directory, configures logging and
// builds the app facade before any subcommand runs, so handlers share one
// importer, evaluation frame and result store.
package commands
