// Package commands defines the designopt CLI.
//
// Commands
//
//   - serve      Run the websocket evaluation service
//   - eval       Evaluate one design vector
//   - optimize   Sample a model and print its non-dominated designs
//   - bounds     List the models, or the design variables of one model
//
// The root command loads the ini configuration named by --config before any
// subcommand runs. A missing file at the default path falls back to the
// built-in defaults.
package commands
