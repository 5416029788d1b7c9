package convert

import (
	"fmt"
	"log/slog"
	"slices"

	"regex-transpiler/expr"
	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/node"
	"regex-transpiler/options"
)

// Context is the mutable state of one conversion run. It must not be shared between runs.
type Context struct {
	Target              options.TargetEnum
	CaseInsensitiveRoot bool
	Diagnostics         *diagnostic.Diagnostics
	Logger              *slog.Logger

	unicode         options.UnicodeMode
	extendedUnicode bool

	index         *expr.Index
	captures      node.Dealer
	localCaptures int
	// inlining holds the groups whose clones are being converted, innermost last.
	inlining []*expr.Expression
}

// NewContext prepares a run over root. opts must be validated.
func NewContext(root *expr.Expression, opts options.Options) *Context {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Context{
		Target:              opts.Target,
		CaseInsensitiveRoot: opts.CaseInsensitive,
		Diagnostics:         &diagnostic.Diagnostics{},
		Logger:              logger,
		unicode:             opts.Unicode,
		extendedUnicode:     opts.Unicode == options.UnicodeOn && opts.Target.SupportsExtendedUnicode(),
		index:               expr.NewIndex(root),
	}
}

// ExtendedUnicode reports whether the u flag is on, without turning it on.
func (c *Context) ExtendedUnicode() bool {
	return c.extendedUnicode
}

// EnableExtendedUnicode turns the u flag on when the target has one and the
// run allows it. It reports whether the flag is on afterwards.
// Once on, the flag stays on for the rest of the run.
func (c *Context) EnableExtendedUnicode() bool {
	if c.extendedUnicode {
		return true
	}

	if c.unicode == options.UnicodeOff || !c.Target.SupportsExtendedUnicode() {
		return false
	}

	c.extendedUnicode = true
	c.Logger.Debug("extended unicode enabled", slog.String("target", c.Target.String()))

	return true
}

// CaptureGroup allocates the output position of a capturing group.
// Groups of the source tree are recorded in the renumbering table;
// groups inside an inlined clone count as local captures.
func (c *Context) CaptureGroup(group *expr.Expression) int {
	if len(c.inlining) > 0 {
		return c.LocalCapture()
	}

	return c.captures.Done(group.Number)
}

// LocalCapture allocates a position for a group the converter adds itself.
func (c *Context) LocalCapture() int {
	c.localCaptures++
	return c.captures.Next()
}

// LocalCaptureCount is the number of capturing groups declared by the conversion.
func (c *Context) LocalCaptureCount() int {
	return c.localCaptures
}

// CaptureCount is the number of capturing groups in the output.
func (c *Context) CaptureCount() int {
	return c.captures.Count()
}

// Position returns the output position of a source capture ordinal, if it has one yet.
func (c *Context) Position(ordinal int) (int, bool) {
	return c.captures.Position(ordinal)
}

// Backref returns a numeric backreference to the group with the given ordinal.
// If the group has not been emitted yet, the node is settled once it is.
func (c *Context) Backref(ordinal int) *node.Node {
	return c.captures.Needs(ordinal)
}

// Resolve looks up the group referenced by a backreference or call.
func (c *Context) Resolve(exp *expr.Expression) (*expr.Expression, error) {
	if exp.Ref == nil {
		return nil, &ReferenceError{Source: exp.Text, Pos: exp.Pos}
	}

	target, ok := c.index.Lookup(*exp.Ref)
	if !ok {
		return nil, &ReferenceError{Source: exp.Text, Pos: exp.Pos, Ref: *exp.Ref}
	}

	return target, nil
}

// Inlining reports whether a clone of group is currently being converted.
func (c *Context) Inlining(group *expr.Expression) bool {
	return slices.Contains(c.inlining, group)
}

func (c *Context) pushInline(group *expr.Expression) {
	c.inlining = append(c.inlining, group)
}

func (c *Context) popInline() {
	c.inlining = c.inlining[:len(c.inlining)-1]
}

// Unsupported records a construct the target cannot express.
func (c *Context) Unsupported(feature string, exp *expr.Expression) {
	c.Logger.Debug("unsupported feature", slog.String("feature", feature), slog.Int("pos", exp.Pos))
	c.Diagnostics.AddUnsupported(feature, exp.String(), exp.Pos)
}

// finish reports backreferences whose group never produced output.
// They render as a lookahead that never matches.
func (c *Context) finish() {
	for _, ordinal := range c.captures.Fail() {
		c.Diagnostics.AddWarning(diagnostic.CodeDroppedGroup,
			fmt.Sprintf("backreference to group %d, which produced no output", ordinal), "", 0)
		c.Logger.Debug("unsettled backreference", slog.Int("group", ordinal))
	}
}
