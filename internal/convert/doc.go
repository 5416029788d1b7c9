// Package convert turns a source expression tree into an output node tree
// for an ECMAScript engine of a given feature level.
//
// A run walks the tree depth-first. Dispatch classifies every expression
// into a ConverterEnum and hands it to the matching Converter together with
// the run's Context, which carries:
//   - the target feature level and the case-insensitivity of the whole pattern
//   - the extended unicode (u) flag, which converters turn on as they need it
//   - capture renumbering, so inlined subexpression calls keep backreferences right
//   - the diagnostics collected for constructs the target cannot express
//
// Unsupported constructs become diagnostics and produce best-effort output.
// A backreference whose group cannot be found is a malformed tree and fails
// the run with a *ReferenceError.
package convert
