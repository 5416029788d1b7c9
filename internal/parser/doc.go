// Package parser reads patterns of the source dialect (Onigmo, as used by Ruby)
// into expr trees.
//
// Lexing is done by a participle stateful lexer with separate states for the
// pattern body and bracket expressions. The grammar only produces a flat token
// stream; the builder nests groups, splits alternations, attaches quantifiers,
// numbers capturing groups and propagates inline options to every node.
package parser
