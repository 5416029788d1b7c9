package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"regex-transpiler/expr"
	"regex-transpiler/internal/common"
	"regex-transpiler/utils"
)

// flags are the inline options in effect at some point of the pattern.
type flags struct {
	caseInsensitive bool
	multiline       bool
	extended        bool
	asciiClasses    bool
	unicodeClasses  bool
}

func (f flags) apply(e *expr.Expression) {
	e.CaseInsensitive = f.caseInsensitive
	e.Multiline = f.multiline
	e.ASCIIClasses = f.asciiClasses
	e.UnicodeClasses = f.unicodeClasses
}

// with applies an option string such as "(?im-x:" or "(?a)".
func (f flags) with(text string) flags {
	body := strings.TrimRight(strings.TrimPrefix(text, "(?"), ":)")
	on, off := utils.Unpack2(strings.SplitN(body, "-", 2))

	for _, c := range on {
		switch c {
		case 'i':
			f.caseInsensitive = true
		case 'm':
			f.multiline = true
		case 'x':
			f.extended = true
		case 'a':
			f.asciiClasses, f.unicodeClasses = true, false
		case 'u':
			f.asciiClasses, f.unicodeClasses = false, true
		case 'd':
			f.asciiClasses, f.unicodeClasses = false, false
		}
	}

	for _, c := range off {
		switch c {
		case 'i':
			f.caseInsensitive = false
		case 'm':
			f.multiline = false
		case 'x':
			f.extended = false
		}
	}

	return f
}

// frame is a group being built; the root frame has no group.
type frame struct {
	group    *expr.Expression
	open     token
	flags    flags
	altPos   int
	branches [][]*expr.Expression
	items    []*expr.Expression
}

type builder struct {
	pattern string
	tokens  []token
	next    int
	stack   []*frame

	captures int
	// namedOnly is set when the pattern has named groups; plain parentheses then do not capture.
	namedOnly bool
	// lastChar is set while the last item is a literal that the next character may extend.
	lastChar  bool
	inComment bool
}

func newBuilder(pattern string, tokens []token, opts Options) *builder {
	b := &builder{pattern: pattern, tokens: tokens}

	b.stack = []*frame{{flags: flags{
		caseInsensitive: opts.CaseInsensitive,
		multiline:       opts.Multiline,
		extended:        opts.Extended,
	}}}

	for _, t := range tokens {
		if t.kind == kindNamedOpen {
			b.namedOnly = true
			break
		}
	}

	return b
}

func (b *builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

func (b *builder) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pattern: b.pattern, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (b *builder) build() (*expr.Expression, error) {
	for b.next < len(b.tokens) {
		tok := b.tokens[b.next]
		b.next++

		if err := b.step(tok); err != nil {
			return nil, err
		}
	}

	if len(b.stack) > 1 {
		return nil, b.errorf(b.top().open.pos, "end pattern with unmatched parenthesis")
	}

	root := &expr.Expression{Type: expr.TypeExpression, Token: expr.TokenRoot, Text: b.pattern}
	b.stack[0].flags.apply(root)
	root.Children = b.stack[0].children()

	return root, nil
}

// children closes the frame's last branch and returns its items,
// wrapped in an alternation if the frame has several branches.
func (f *frame) children() []*expr.Expression {
	if len(f.branches) == 0 {
		return f.items
	}

	alt := &expr.Expression{Type: expr.TypeMeta, Token: expr.TokenAlternation, Text: "|", Pos: f.altPos}
	f.flags.apply(alt)

	for _, items := range append(f.branches, f.items) {
		seq := &expr.Expression{Type: expr.TypeExpression, Token: expr.TokenSequence, Children: items}
		if first, ok := common.First(items); ok {
			seq.Pos = first.Pos
		}

		alt.Add(seq)
	}

	return []*expr.Expression{alt}
}

func (b *builder) add(e *expr.Expression) {
	f := b.top()
	f.items = append(f.items, e)
}

func (b *builder) leaf(typ expr.TypeEnum, tk expr.TokenEnum, tok token) *expr.Expression {
	e := &expr.Expression{Type: typ, Token: tk, Text: tok.value, Pos: tok.pos}
	b.top().flags.apply(e)

	return e
}

func (b *builder) step(tok token) error {
	f := b.top()

	extendChar := b.lastChar
	b.lastChar = false

	if b.inComment {
		b.inComment = tok.value != "\n"
		return nil
	}

	if f.flags.extended && tok.kind == kindChar {
		if tok.value == "#" {
			b.inComment = true
			return nil
		}

		if strings.TrimSpace(tok.value) == "" {
			return nil
		}
	}

	switch tok.kind {
	case kindComment:
		b.add(b.leaf(expr.TypeGroup, expr.TokenComment, tok))
	case kindNamedOpen:
		b.open(tok, expr.TypeGroup, expr.TokenNamedCapture, f.flags)
	case kindOpen:
		if b.namedOnly {
			b.open(tok, expr.TypeGroup, expr.TokenPassive, f.flags)
		} else {
			b.open(tok, expr.TypeGroup, expr.TokenCapture, f.flags)
		}
	case kindPassiveOpen:
		b.open(tok, expr.TypeGroup, expr.TokenPassive, f.flags)
	case kindAtomicOpen:
		b.open(tok, expr.TypeGroup, expr.TokenAtomic, f.flags)
	case kindAbsentOpen:
		b.open(tok, expr.TypeGroup, expr.TokenAbsence, f.flags)
	case kindLookOpen:
		b.open(tok, expr.TypeAssertion, lookarounds[tok.value], f.flags)
	case kindOptionOpen:
		b.open(tok, expr.TypeGroup, expr.TokenOptions, f.flags.with(tok.value))
	case kindOptionSwitch:
		f.flags = f.flags.with(tok.value)
		b.add(b.leaf(expr.TypeGroup, expr.TokenOptionsSwitch, tok))
	case kindClose:
		return b.close(tok)
	case kindAlt:
		if len(f.branches) == 0 {
			f.altPos = tok.pos
		}

		f.branches = append(f.branches, f.items)
		f.items = nil
	case kindQuantifier:
		return b.quantify(tok)
	case kindSetOpen:
		set, err := b.set(tok)
		if err != nil {
			return err
		}

		b.add(set)
	case kindAnchor:
		b.add(b.leaf(expr.TypeAnchor, anchors[tok.value], tok))
	case kindDot:
		b.add(b.leaf(expr.TypeMeta, expr.TokenDot, tok))
	case kindBackref:
		ref, err := b.backref(tok)
		if err != nil {
			return err
		}

		b.add(ref)
	case kindProperty:
		b.add(b.property(tok))
	case kindType:
		b.add(b.leaf(expr.TypeType, types[tok.value[1]], tok))
	case kindEscape:
		e, err := b.escape(tok, false)
		if err != nil {
			return err
		}

		b.add(e)
	case kindChar:
		b.char(tok, extendChar)
	default:
		return b.errorf(tok.pos, "unexpected %q", tok.value)
	}

	return nil
}

var lookarounds = map[string]expr.TokenEnum{
	"(?=":  expr.TokenLookahead,
	"(?!":  expr.TokenNegLookahead,
	"(?<=": expr.TokenLookbehind,
	"(?<!": expr.TokenNegLookbehind,
}

var anchors = map[string]expr.TokenEnum{
	"^":  expr.TokenBOL,
	"$":  expr.TokenEOL,
	`\A`: expr.TokenBOS,
	`\z`: expr.TokenEOS,
	`\Z`: expr.TokenEOSObEOL,
	`\b`: expr.TokenWordBoundary,
	`\B`: expr.TokenNonwordBoundary,
	`\G`: expr.TokenMatchStart,
}

var types = map[byte]expr.TokenEnum{
	'd': expr.TokenDigit,
	'D': expr.TokenNondigit,
	's': expr.TokenSpace,
	'S': expr.TokenNonspace,
	'w': expr.TokenWord,
	'W': expr.TokenNonword,
	'h': expr.TokenHex,
	'H': expr.TokenNonhex,
	'R': expr.TokenLinebreak,
	'X': expr.TokenXGrapheme,
}

func (b *builder) open(tok token, typ expr.TypeEnum, tk expr.TokenEnum, inner flags) {
	g := &expr.Expression{Type: typ, Token: tk, Pos: tok.pos}
	inner.apply(g)

	if tk == expr.TokenNamedCapture {
		name := strings.TrimPrefix(tok.value[2:], "P")
		g.Name = name[1 : len(name)-1]
	}

	if g.IsCapture() {
		b.captures++
		g.Number = b.captures
	}

	b.stack = append(b.stack, &frame{group: g, open: tok, flags: inner})
}

func (b *builder) close(tok token) error {
	if len(b.stack) == 1 {
		return b.errorf(tok.pos, "unmatched close parenthesis")
	}

	f := b.top()
	b.stack = b.stack[:len(b.stack)-1]

	f.group.Children = f.children()
	f.group.Text = b.pattern[f.open.pos : tok.pos+len(tok.value)]
	b.add(f.group)

	return nil
}

func (b *builder) char(tok token, extend bool) {
	f := b.top()

	if last, ok := common.Last(f.items); ok && extend && last.Is(expr.TypeLiteral) && !last.IsQuantified() {
		last.Text += tok.value
	} else {
		b.add(b.leaf(expr.TypeLiteral, expr.TokenLiteral, tok))
	}

	b.lastChar = true
}

func (b *builder) quantify(tok token) error {
	f := b.top()

	last, ok := common.Last(f.items)
	if !ok {
		return b.errorf(tok.pos, "target of repeat operator is not specified")
	}

	if last.Is(expr.TypeAnchor) || last.Is(expr.TypeGroup, expr.TokenOptionsSwitch, expr.TokenComment) {
		return b.errorf(tok.pos, "target of repeat operator is invalid")
	}

	q, err := b.quantifier(tok)
	if err != nil {
		return err
	}

	// a quantifier binds to the last character of a literal run
	if last.Is(expr.TypeLiteral) && !last.IsQuantified() && utf8.RuneCountInString(last.Text) > 1 {
		size := utils.Second(utf8.DecodeLastRuneInString(last.Text))
		head := len(last.Text) - size

		tail := *last
		tail.Text = last.Text[head:]
		tail.Pos = last.Pos + head
		last.Text = last.Text[:head]

		f.items = append(f.items, &tail)
		last = &tail
	}

	if last.IsQuantified() {
		wrapper := &expr.Expression{Type: expr.TypeGroup, Token: expr.TokenPassive, Text: last.String(), Pos: last.Pos}
		f.flags.apply(wrapper)
		wrapper.Add(last)

		f.items[len(f.items)-1] = wrapper
		last = wrapper
	}

	last.Quantifier = q

	return nil
}

func (b *builder) quantifier(tok token) (*expr.Quantifier, error) {
	text := tok.value
	q := &expr.Quantifier{Text: text}

	base, suffix := text[:1], text[1:]
	if text[0] == '{' {
		end := strings.IndexByte(text, '}')
		base, suffix = text[:end+1], text[end+1:]
	}

	switch suffix {
	case "?":
		q.Mode = expr.QuantifierReluctant
	case "+":
		q.Mode = expr.QuantifierPossessive
	}

	switch base {
	case "*":
		q.Min, q.Max = 0, -1
	case "+":
		q.Min, q.Max = 1, -1
	case "?":
		q.Min, q.Max = 0, 1
	default:
		lo, hi, interval := strings.Cut(base[1:len(base)-1], ",")
		q.Min, _ = strconv.Atoi(lo)
		q.Max = q.Min

		if interval {
			q.Max = -1
			if hi != "" {
				q.Max, _ = strconv.Atoi(hi)
			}
		}

		if q.Max >= 0 && q.Max < q.Min {
			return nil, b.errorf(tok.pos, "upper bound must be greater than lower bound")
		}
	}

	return q, nil
}

func (b *builder) backref(tok token) (*expr.Expression, error) {
	e := b.leaf(expr.TypeBackref, expr.TokenNumber, tok)
	text := tok.value

	if text[1] >= '1' && text[1] <= '9' {
		n, _ := strconv.Atoi(text[1:])
		e.Ref = &expr.Reference{Number: n}

		return e, nil
	}

	call := text[1] == 'g'
	inner := text[3 : len(text)-1]
	ref := &expr.Reference{}
	e.Ref = ref

	recursion := false

	if !call {
		if i := strings.LastIndexAny(inner, "+-"); i > 0 {
			level, err := strconv.Atoi(inner[i:])
			if err == nil {
				inner, ref.Level, recursion = inner[:i], level, true
			}
		}
	}

	n, err := strconv.Atoi(inner)
	if err != nil {
		ref.Name = inner

		switch {
		case call:
			e.Token = expr.TokenNameCall
		case recursion:
			e.Token = expr.TokenNameRecursionRef
		default:
			e.Token = expr.TokenNameRef
		}

		return e, nil
	}

	relative := inner[0] == '-' || inner[0] == '+'
	ref.Number = n

	if relative {
		ref.Number = b.captures + n
		if n < 0 {
			ref.Number++
		}

		if ref.Number < 1 {
			return nil, b.errorf(tok.pos, "invalid backref number/name")
		}
	}

	switch {
	case recursion:
		e.Token = expr.TokenNumberRecursionRef
	case call && relative:
		e.Token = expr.TokenNumberRelCall
	case call:
		e.Token = expr.TokenNumberCall
	case relative:
		e.Token = expr.TokenNumberRelRef
	default:
		e.Token = expr.TokenNumberRef
	}

	return e, nil
}

func (b *builder) property(tok token) *expr.Expression {
	e := b.leaf(expr.TypeProperty, expr.TokenProperty, tok)
	e.Negative = tok.value[1] == 'P'

	name := tok.value[3 : len(tok.value)-1]
	if rest, ok := strings.CutPrefix(name, "^"); ok {
		e.Negative = !e.Negative
		name = rest
	}

	e.Name = name

	return e
}

func (b *builder) escape(tok token, inSet bool) (*expr.Expression, error) {
	tk, r, ok := decodeEscape(tok.value, inSet)
	if !ok {
		return nil, b.errorf(tok.pos, "invalid code point value %q", tok.value)
	}

	e := b.leaf(expr.TypeEscape, tk, tok)
	e.Codepoint = r

	return e, nil
}

// set consumes the tokens of a bracket expression opened by open.
func (b *builder) set(open token) (*expr.Expression, error) {
	set := b.leaf(expr.TypeSet, expr.TokenCharacterSet, open)
	set.Negative = open.value == "[^"

	var operands [][]*expr.Expression

	var members []*expr.Expression

	for b.next < len(b.tokens) {
		tok := b.tokens[b.next]
		b.next++

		switch tok.kind {
		case kindSetClose:
			set.Text = b.pattern[open.pos : tok.pos+len(tok.value)]
			set.Children = b.intersect(operands, members)

			return set, nil
		case kindSetOpen:
			nested, err := b.set(tok)
			if err != nil {
				return nil, err
			}

			members = append(members, nested)
		case kindAnd:
			operands = append(operands, members)
			members = nil
		case kindDash:
			rng, err := b.rangeFrom(members, tok)
			if err != nil {
				return nil, err
			}

			if rng != nil {
				members[len(members)-1] = rng
			} else {
				members = append(members, b.leaf(expr.TypeLiteral, expr.TokenLiteral, tok))
			}
		case kindPosix:
			e := b.leaf(expr.TypePosixClass, expr.TokenPosixClass, tok)
			name := strings.TrimSuffix(strings.TrimPrefix(tok.value, "[:"), ":]")
			e.Name, e.Negative = strings.TrimPrefix(name, "^"), strings.HasPrefix(name, "^")
			members = append(members, e)
		case kindProperty:
			members = append(members, b.property(tok))
		case kindType:
			members = append(members, b.leaf(expr.TypeType, types[tok.value[1]], tok))
		case kindEscape:
			e, err := b.escape(tok, true)
			if err != nil {
				return nil, err
			}

			members = append(members, e)
		case kindChar:
			members = append(members, b.leaf(expr.TypeLiteral, expr.TokenLiteral, tok))
		default:
			return nil, b.errorf(tok.pos, "unexpected %q in char-class", tok.value)
		}
	}

	return nil, b.errorf(open.pos, "premature end of char-class")
}

// rangeFrom builds lo-hi from the last member and the token after the dash.
// It returns nil when the dash is a literal.
func (b *builder) rangeFrom(members []*expr.Expression, dash token) (*expr.Expression, error) {
	lo, ok := common.Last(members)
	if !ok || !isEndpoint(lo) || b.next >= len(b.tokens) {
		return nil, nil
	}

	next := b.tokens[b.next]

	var hi *expr.Expression

	switch next.kind {
	case kindChar:
		hi = b.leaf(expr.TypeLiteral, expr.TokenLiteral, next)
	case kindEscape:
		e, err := b.escape(next, true)
		if err != nil {
			return nil, err
		}

		hi = e
	default:
		return nil, nil
	}

	b.next++

	if lo.Char() > hi.Char() {
		return nil, b.errorf(lo.Pos, "empty range in char class")
	}

	rng := &expr.Expression{
		Type:  expr.TypeSet,
		Token: expr.TokenRange,
		Text:  b.pattern[lo.Pos : next.pos+len(next.value)],
		Pos:   lo.Pos,
	}
	b.top().flags.apply(rng)

	return rng.Add(lo, hi), nil
}

func isEndpoint(e *expr.Expression) bool {
	return e.Is(expr.TypeLiteral) || e.Is(expr.TypeEscape)
}

// intersect groups the operands of && into an intersection node.
func (b *builder) intersect(operands [][]*expr.Expression, members []*expr.Expression) []*expr.Expression {
	if len(operands) == 0 {
		return members
	}

	inter := &expr.Expression{Type: expr.TypeSet, Token: expr.TokenIntersection, Text: "&&"}
	b.top().flags.apply(inter)

	for _, operand := range append(operands, members) {
		seq := &expr.Expression{Type: expr.TypeSet, Token: expr.TokenIntersected, Children: operand}
		b.top().flags.apply(seq)
		inter.Add(seq)
	}

	return []*expr.Expression{inter}
}
