// Package logging constructs slog loggers for the CLI.
//
// It offers a human-oriented console handler for interactive use and a JSON
// handler for machine consumption, plus thin aliases over slog attribute
// constructors so call sites stay terse. Commands obtain a logger once from
// configuration and hand component-scoped children to internal packages.
package logging
