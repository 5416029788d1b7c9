// Package expr models a parsed source-dialect regular expression.
//
// An Expression carries a coarse TypeEnum and a fine TokenEnum; together they
// form the closed set of node kinds the converters dispatch on. Backreferences
// and subexpression calls hold a Reference key that is resolved through an
// Index, never a pointer to the group itself.
package expr
