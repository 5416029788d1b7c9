package convert

import (
	"strings"
	"unicode/utf8"

	"regex-transpiler/expr"
	"regex-transpiler/node"
)

// Converter translates one kind of expression.
// Constructs the target cannot express are recorded in ctx.Diagnostics;
// the error return is reserved for malformed trees.
type Converter interface {
	Convert(exp *expr.Expression, ctx *Context) (*node.Node, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(exp *expr.Expression, ctx *Context) (*node.Node, error)

func (f ConverterFunc) Convert(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	return f(exp, ctx)
}

// Classify picks the converter for an expression.
func Classify(exp *expr.Expression) ConverterEnum {
	switch exp.Type {
	case expr.TypeExpression:
		if exp.Is(expr.TypeExpression, expr.TokenRoot, expr.TokenSequence) {
			return ConverterSequence
		}

		return ConverterUnsupported
	case expr.TypeMeta:
		switch exp.Token {
		case expr.TokenAlternation:
			return ConverterAlternation
		case expr.TokenDot:
			return ConverterDot
		default:
			return ConverterUnsupported
		}
	case expr.TypeLiteral:
		return ConverterLiteral
	case expr.TypeSet:
		return ConverterSet
	case expr.TypeType:
		return ConverterType
	case expr.TypeBackref:
		return ConverterBackref
	case expr.TypeGroup:
		return ConverterGroup
	case expr.TypeAssertion:
		return ConverterAssertion
	case expr.TypeAnchor:
		return ConverterAnchor
	case expr.TypeEscape:
		return ConverterEscape
	case expr.TypeProperty, expr.TypePosixClass:
		return ConverterProperty
	default:
		return ConverterUnsupported
	}
}

func converterFor(kind ConverterEnum) Converter {
	switch kind {
	case ConverterSequence:
		return ConverterFunc(convertSequence)
	case ConverterAlternation:
		return ConverterFunc(convertAlternation)
	case ConverterDot:
		return ConverterFunc(convertDot)
	case ConverterLiteral:
		return ConverterFunc(convertLiteral)
	case ConverterSet:
		return ConverterFunc(convertSet)
	case ConverterType:
		return ConverterFunc(convertType)
	case ConverterBackref:
		return ConverterFunc(convertBackref)
	case ConverterGroup:
		return ConverterFunc(convertGroup)
	case ConverterAssertion:
		return ConverterFunc(convertAssertion)
	case ConverterAnchor:
		return ConverterFunc(convertAnchor)
	case ConverterEscape:
		return ConverterFunc(convertEscape)
	case ConverterProperty:
		return ConverterFunc(convertProperty)
	default:
		return ConverterFunc(convertUnsupported)
	}
}

// Dispatch converts exp with its converter and applies its quantifier.
func Dispatch(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	out, err := converterFor(Classify(exp)).Convert(exp, ctx)
	if err != nil {
		return nil, err
	}

	if !exp.IsQuantified() || out.IsEmpty() {
		return out, nil
	}

	if needsGroup(exp) {
		out = node.Wrap(node.New("(?:"), out, node.New(")"))
	}

	return node.Wrap(out, node.New(quantifier(exp, ctx))), nil
}

// needsGroup reports whether the output of exp is more than one atom.
func needsGroup(exp *expr.Expression) bool {
	switch exp.Type {
	case expr.TypeLiteral:
		return utf8.RuneCountInString(exp.Text) > 1
	case expr.TypeExpression:
		return true
	case expr.TypeMeta:
		return exp.Token == expr.TokenAlternation
	case expr.TypeGroup:
		return exp.Token == expr.TokenAtomic
	default:
		return false
	}
}

func convertUnsupported(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	ctx.Unsupported(exp.Describe(), exp)
	return node.Wrap(), nil
}

// convertItems converts consecutive expressions. A numeric backreference
// directly followed by a digit is separated from it so the digit does not
// extend the group number.
func convertItems(items []*expr.Expression, ctx *Context) (*node.Node, error) {
	out := node.Wrap()

	var prev *node.Node

	for _, item := range items {
		n, err := Dispatch(item, ctx)
		if err != nil {
			return nil, err
		}

		if n.IsEmpty() {
			continue
		}

		if isNumericBackref(prev.Last()) && startsWithDigit(n) {
			out.Append(node.New("(?:)"))
		}

		out.Append(n)
		prev = n
	}

	return out, nil
}

func isNumericBackref(n *node.Node) bool {
	return n != nil && n.Kind == node.KindBackref && !strings.HasPrefix(n.Value, `\k`)
}

func startsWithDigit(n *node.Node) bool {
	text := n.Render()
	return text != "" && text[0] >= '0' && text[0] <= '9'
}

func convertSequence(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	return convertItems(exp.Children, ctx)
}

func convertAlternation(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	out := node.Wrap()

	for i, branch := range exp.Children {
		if i > 0 {
			out.Append(node.New("|"))
		}

		n, err := Dispatch(branch, ctx)
		if err != nil {
			return nil, err
		}

		out.Append(n)
	}

	return out, nil
}

func convertDot(exp *expr.Expression, _ *Context) (*node.Node, error) {
	if exp.Multiline {
		return node.New(`[\s\S]`), nil
	}

	return node.New("."), nil
}
