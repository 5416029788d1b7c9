// Package emit renders converted patterns as JavaScript source: regular
// expression literals, RegExp constructor calls and generated modules that
// export one constant per pattern.
package emit
