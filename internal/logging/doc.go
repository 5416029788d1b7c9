// Package logging configures the slog logger used by the command line tool.
//
// The conversion core never logs through the default logger; it receives a
// *slog.Logger in its options and reports problems as diagnostics.
package logging
