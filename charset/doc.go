// Package charset implements the codepoint-set algebra used to rebuild
// character classes: sets of inclusive codepoint ranges with union,
// intersection, inversion and case-insensitive closure, plus renderers for
// bracket expressions in legacy (\uXXXX, surrogate pairs) and modern
// (\u{...}) notation.
//
// OfExpression maps a parsed class, shorthand, property or literal to the
// set of codepoints it matches.
package charset
