package convert

import (
	"regex-transpiler/expr"
	"regex-transpiler/node"
)

func convertGroup(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	switch exp.Token {
	case expr.TokenCapture, expr.TokenNamedCapture:
		return convertCapture(exp, ctx)
	case expr.TokenPassive, expr.TokenOptions:
		// inline options are already applied to the flags of every descendant
		return wrapItems("(?:", exp.Children, ")", ctx)
	case expr.TokenOptionsSwitch, expr.TokenComment:
		return node.Wrap(), nil
	case expr.TokenAtomic:
		return convertAtomic(exp, ctx)
	case expr.TokenAbsence:
		ctx.Unsupported("absence operator", exp)
		return node.Wrap(), nil
	default:
		return convertUnsupported(exp, ctx)
	}
}

func convertCapture(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	pos := ctx.CaptureGroup(exp)

	open := "("
	if exp.Token == expr.TokenNamedCapture && ctx.Target.SupportsNamedGroups() {
		open = "(?<" + exp.Name + ">"
	}

	inner, err := convertItems(exp.Children, ctx)
	if err != nil {
		return nil, err
	}

	group := node.Capture(pos, inner)
	group.Value = open

	return group, nil
}

// convertAtomic emulates (?>X) as (?=(X))\N: the lookahead matches X once
// and the backreference consumes exactly that match without backtracking into it.
func convertAtomic(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	pos := ctx.LocalCapture()

	inner, err := convertItems(exp.Children, ctx)
	if err != nil {
		return nil, err
	}

	lookahead := node.Wrap(node.New("(?="), node.Capture(pos, inner), node.New(")"))

	return node.Wrap(lookahead, node.Backref(pos)), nil
}

func wrapItems(open string, items []*expr.Expression, closing string, ctx *Context) (*node.Node, error) {
	inner, err := convertItems(items, ctx)
	if err != nil {
		return nil, err
	}

	return node.Wrap(node.New(open), inner, node.New(closing)), nil
}

func convertAssertion(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	switch exp.Token {
	case expr.TokenLookahead:
		return wrapItems("(?=", exp.Children, ")", ctx)
	case expr.TokenNegLookahead:
		return wrapItems("(?!", exp.Children, ")", ctx)
	case expr.TokenLookbehind, expr.TokenNegLookbehind:
		if !ctx.Target.SupportsLookbehind() {
			ctx.Unsupported("lookbehind", exp)
			return node.Wrap(), nil
		}

		if exp.Token == expr.TokenLookbehind {
			return wrapItems("(?<=", exp.Children, ")", ctx)
		}

		return wrapItems("(?<!", exp.Children, ")", ctx)
	default:
		return convertUnsupported(exp, ctx)
	}
}

func convertAnchor(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	switch exp.Token {
	case expr.TokenBOL, expr.TokenBOS:
		return node.New("^"), nil
	case expr.TokenEOL, expr.TokenEOS:
		return node.New("$"), nil
	case expr.TokenEOSObEOL:
		return node.New(`(?=\n?$)`), nil
	case expr.TokenWordBoundary:
		return node.New(`\b`), nil
	case expr.TokenNonwordBoundary:
		return node.New(`\B`), nil
	case expr.TokenMatchStart:
		ctx.Unsupported("match start anchor", exp)
		return node.Wrap(), nil
	default:
		return convertUnsupported(exp, ctx)
	}
}
