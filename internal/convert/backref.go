package convert

import (
	"regex-transpiler/expr"
	"regex-transpiler/node"
)

func convertBackref(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	switch exp.Token {
	case expr.TokenNameRef:
		return convertNameRef(exp, ctx)
	case expr.TokenNumber, expr.TokenNumberRef, expr.TokenNumberRelRef:
		return convertNumberRef(exp, ctx)
	case expr.TokenNameCall, expr.TokenNumberCall, expr.TokenNumberRelCall:
		return convertCall(exp, ctx)
	default:
		return convertUnsupported(exp, ctx)
	}
}

// convertNameRef keeps \k<name> where the target has named groups.
// The group is still renumbered so numeric references to it agree.
func convertNameRef(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	if !ctx.Target.SupportsNamedGroups() {
		return convertNumberRef(exp, ctx)
	}

	target, err := ctx.Resolve(exp)
	if err != nil {
		return nil, err
	}

	ref := ctx.Backref(target.Number)

	return &node.Node{Value: `\k<` + exp.Ref.Name + `>`, Kind: node.KindBackref, Reference: ref.Reference}, nil
}

func convertNumberRef(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	target, err := ctx.Resolve(exp)
	if err != nil {
		return nil, err
	}

	if !target.IsCapture() {
		ctx.Unsupported("whole-pattern backreference", exp)
		return node.Wrap(), nil
	}

	return ctx.Backref(target.Number), nil
}

// convertCall inlines one level of a subexpression call by converting a
// clone of the called group in place of the call.
func convertCall(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	target, err := ctx.Resolve(exp)
	if err != nil {
		return nil, err
	}

	if !target.IsCapture() {
		ctx.Unsupported("whole-pattern recursion", exp)
		return node.Wrap(), nil
	}

	if ctx.Inlining(target) {
		ctx.Unsupported("recursive subexpression call", exp)
		return node.Wrap(), nil
	}

	clone := target.UnquantifiedClone()
	unname(clone)

	ctx.pushInline(target)
	defer ctx.popInline()

	return Dispatch(clone, ctx)
}

// unname turns named groups of a clone into plain ones so the output has no duplicate names.
func unname(clone *expr.Expression) {
	if clone.Is(expr.TypeGroup, expr.TokenNamedCapture) {
		clone.Token = expr.TokenCapture
		clone.Name = ""
	}

	for e := range clone.Descendants() {
		if e.Is(expr.TypeGroup, expr.TokenNamedCapture) {
			e.Token = expr.TokenCapture
			e.Name = ""
		}
	}
}
