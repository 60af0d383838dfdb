// Package cli provides the interactive GophFX currency converter shell.
//
// It wires configuration, the rate source, the conversion engine and the
// local history store into a REPL. Typical flow: fetch rates on start,
// convert as a guest or log in to keep a personal history.
//
// Commands:
//   - convert [amount from to]  (prompts for missing parts)
//   - history                   conversions of the current user (or guest)
//   - currencies [filter]       list codes, optionally by substring
//   - chart                     bar chart of the first ten rates
//   - refresh                   fetch a new rate snapshot
//   - register / login / logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
