package props

import (
	"strings"

	"github.com/hashdot/hashdot/internal/logging"
)

// Parser installs directive lines into a Store. Include, when set, is
// invoked once per value of a hashdot.profile directive so the owner can
// load the named profile recursively before the values are appended.
type Parser struct {
	Store   *Store
	Include func(name string) error
}

type assignKind int

const (
	opAssign assignKind = iota
	opAppend
)

// Lexer states, one per position class in the line grammar.
type lexState int

const (
	stBeforeName lexState = iota
	stName
	stAfterName
	stValues
	stValueToken
	stValueVar
	stQuoted
	stQuotedVar
)

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ParseLine parses one logical directive line and applies it to the
// store. Blank lines are a no-op. On a parse error the store is left
// untouched by this line. For a hashdot.profile line, profiles already
// included before a failing include stay applied.
func (p *Parser) ParseLine(line string) error {
	var (
		state  = stBeforeName
		i      int           // cursor
		b      int           // start of the run being accumulated
		name   string
		kind   = opAssign
		values []string
		val    strings.Builder
	)

	fail := func(kind ParseErrorKind, ref string) error {
		return &ParseError{Kind: kind, Line: line, Col: i, Ref: ref}
	}

	pushValue := func() {
		val.WriteString(line[b:i])
		values = append(values, val.String())
		val.Reset()
	}

	// interpolate resolves ${name} at line[b:i] into the scratch value.
	// In a bare token the reference must be scalar; in a quoted string
	// multiple values join with single spaces.
	interpolate := func(quoted bool) error {
		ref := line[b:i]
		vals, ok := p.Store.Get(ref)
		if !ok {
			return fail(UnknownProperty, ref)
		}
		if !quoted && len(vals) != 1 {
			return fail(NonScalarInterpolation, ref)
		}
		for n, v := range vals {
			if n > 0 {
				val.WriteByte(' ')
			}
			val.WriteString(v)
		}
		return nil
	}

	n := len(line)
	for {
		var c byte
		eol := i >= n
		if !eol {
			c = line[i]
		}

		switch state {
		case stBeforeName:
			if eol {
				return nil // blank line
			}
			if isWS(c) {
				i++
			} else {
				b = i
				state = stName
			}

		case stName:
			if eol {
				return fail(IncompleteExpression, "")
			}
			if isWS(c) || c == '+' || c == '=' {
				name = line[b:i]
				state = stAfterName
			} else {
				i++
			}

		case stAfterName:
			switch {
			case eol:
				return fail(IncompleteExpression, "")
			case isWS(c):
				i++
			case c == '=':
				kind = opAssign
				state = stValues
				i++
			case c == '+' && i+1 < n && line[i+1] == '=':
				kind = opAppend
				state = stValues
				i += 2
			default:
				return fail(IncompleteExpression, "")
			}

		case stValues:
			if eol {
				return p.install(name, kind, values)
			}
			switch {
			case isWS(c):
				i++
			case c == '"':
				i++
				b = i
				state = stQuoted
			default:
				b = i
				state = stValueToken
			}

		case stValueToken:
			switch {
			case eol || isWS(c):
				pushValue()
				state = stValues
			case c == '$' && i+1 < n && line[i+1] == '{':
				val.WriteString(line[b:i])
				i += 2
				b = i
				state = stValueVar
			default:
				i++
			}

		case stQuoted:
			switch {
			case eol:
				return fail(UnterminatedString, "")
			case c == '"':
				pushValue()
				i++
				state = stValues
			case c == '\\':
				val.WriteString(line[b:i])
				i++
				if i >= n {
					return fail(InvalidEscape, "")
				}
				switch line[i] {
				case 'n':
					val.WriteByte('\n')
				case 'r':
					val.WriteByte('\r')
				case 't':
					val.WriteByte('\t')
				case '\\':
					val.WriteByte('\\')
				case '"':
					val.WriteByte('"')
				case '$':
					val.WriteByte('$')
				default:
					return fail(InvalidEscape, "")
				}
				i++
				b = i
			case c == '$' && i+1 < n && line[i+1] == '{':
				val.WriteString(line[b:i])
				i += 2
				b = i
				state = stQuotedVar
			default:
				i++
			}

		case stValueVar, stQuotedVar:
			switch {
			case eol, c == '"' && state == stQuotedVar:
				return fail(UnterminatedInterpolation, "")
			case c == '}':
				if err := interpolate(state == stQuotedVar); err != nil {
					return err
				}
				if state == stValueVar {
					state = stValueToken
				} else {
					state = stQuoted
				}
				i++
				b = i
			default:
				i++
			}
		}
	}
}

// install applies a fully parsed directive to the store. hashdot.profile
// has implicit append semantics for both operators, and each value loads
// the named profile before the append completes.
func (p *Parser) install(name string, kind assignKind, values []string) error {
	if values == nil {
		values = []string{}
	}
	if name == PropProfile {
		for _, v := range values {
			if p.Include == nil {
				break
			}
			if err := p.Include(v); err != nil {
				return err
			}
		}
		p.Store.Append(name, values)
		logging.Trace("property appended", "name", name, "values", strings.Join(values, " "))
		return nil
	}
	if kind == opAppend {
		p.Store.Append(name, values)
	} else {
		p.Store.Set(name, values)
	}
	logging.Trace("property set", "name", name, "values", strings.Join(values, " "))
	return nil
}
