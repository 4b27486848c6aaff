package shell

import "strings"

// separators are the only characters that split tokens
const separators = " \t\r\n"

type tokenState int

const (
	stateOutside tokenState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Tokenize splits line into shell-style tokens.
//
// Space, tab, carriage return and newline separate tokens outside quotes;
// other whitespace such as a no-break space is part of a token. Single quotes preserve their
// content literally; inside double quotes a backslash escapes only '\' and
// '"'; outside quotes a backslash escapes any character. Quoted and
// unquoted parts that touch form one token, and an explicitly quoted empty
// string yields an empty token. Blank input yields no tokens. Unterminated
// quoting and a trailing backslash fail with ErrTokenization.
func Tokenize(line string) ([]string, error) {
	var (
		tokens   = []string{}
		buf      strings.Builder
		inToken  bool
		escaping bool
		state    = stateOutside
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, buf.String())
			buf.Reset()
			inToken = false
		}
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				buf.WriteRune(ch)
				escaping = false
			case strings.ContainsRune(separators, ch):
				flush()
			case ch == '\'':
				state = stateSingleQuote
				inToken = true
			case ch == '"':
				state = stateDoubleQuote
				inToken = true
			case ch == '\\':
				escaping = true
				inToken = true
			default:
				buf.WriteRune(ch)
				inToken = true
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				if ch != '\\' && ch != '"' {
					buf.WriteRune('\\')
				}
				buf.WriteRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				buf.WriteRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, &Error{Code: CodeTokenization, Err: ErrUnclosedQuote}
	}
	if escaping {
		return nil, &Error{Code: CodeTokenization, Err: ErrDanglingEscape}
	}

	flush()
	return tokens, nil
}
