package database

import "strings"

// ScriptParser splits a SQL script into individual statements.
//
// Statements are separated by ';' outside of string literals, quoted
// identifiers and comments. Anonymous procedural blocks contain semicolons of
// their own and must be executed whole, not through Split.
type ScriptParser struct {
	// BackslashEscapes treats '\' inside quotes as an escape character.
	// When false, quotes are escaped only by doubling them.
	BackslashEscapes bool
}

// NewScriptParser creates a script parser.
func NewScriptParser(backslashEscapes bool) *ScriptParser {
	return &ScriptParser{BackslashEscapes: backslashEscapes}
}

type scanMode int

const (
	modeCode scanMode = iota
	modeLineComment
	modeBlockComment
	modeQuote
)

// Split returns the statements of script in order, trimmed, without the
// terminating ';'. Statements made only of whitespace and comments are dropped.
func (p *ScriptParser) Split(script string) []string {
	var (
		stmts   []string
		cur     strings.Builder
		hasCode bool
		mode    = modeCode
		quote   rune
	)

	flush := func() {
		if hasCode {
			if s := strings.TrimSpace(cur.String()); s != "" {
				stmts = append(stmts, s)
			}
		}
		cur.Reset()
		hasCode = false
	}

	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch mode {
		case modeLineComment:
			cur.WriteRune(ch)
			if ch == '\n' {
				mode = modeCode
			}
			continue
		case modeBlockComment:
			cur.WriteRune(ch)
			if ch == '*' && next == '/' {
				cur.WriteRune(next)
				i++
				mode = modeCode
			}
			continue
		case modeQuote:
			cur.WriteRune(ch)
			switch {
			case p.BackslashEscapes && ch == '\\' && next != 0:
				cur.WriteRune(next)
				i++
			case ch == quote && next == quote:
				cur.WriteRune(next)
				i++
			case ch == quote:
				mode = modeCode
			}
			continue
		}

		switch {
		case ch == ';':
			flush()
		case ch == '-' && next == '-':
			mode = modeLineComment
			cur.WriteRune(ch)
		case ch == '/' && next == '*':
			mode = modeBlockComment
			cur.WriteRune(ch)
			cur.WriteRune(next)
			i++
		case ch == '\'' || ch == '"' || ch == '`':
			mode = modeQuote
			quote = ch
			hasCode = true
			cur.WriteRune(ch)
		default:
			if !isSpace(ch) {
				hasCode = true
			}
			cur.WriteRune(ch)
		}
	}
	flush()

	return stmts
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
