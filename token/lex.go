package token

import "strconv"

// ASCII classification tables, built once at init time rather than
// re-testing rune ranges in the scan loop (grounded on the same
// lookup-table approach a hand-rolled lexer reaches for when it cares
// about the hot path).
var (
	isWhitespaceTbl [128]bool
	isLetterTbl     [128]bool
	isDigitTbl      [128]bool
	isSymbolTbl     [128]bool
)

const symbolSet = `!~&^$%#@=+-*/\|_;:?,.[{(<]})>`

func init() {
	for _, ch := range []byte(" \t\r\n\f\v") {
		isWhitespaceTbl[ch] = true
	}
	for ch := byte('a'); ch <= 'z'; ch++ {
		isLetterTbl[ch] = true
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		isLetterTbl[ch] = true
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		isDigitTbl[ch] = true
	}
	for _, ch := range []byte(symbolSet) {
		isSymbolTbl[ch] = true
	}
}

func classify(ch byte) (whitespace, letter, digit, symbol bool) {
	if ch >= 128 {
		return false, false, false, false
	}
	return isWhitespaceTbl[ch], isLetterTbl[ch], isDigitTbl[ch], isSymbolTbl[ch]
}

// Tokenize scans input into a token list per §6.2. It returns a
// *LexError synchronously, aborting the whole scan, on the first
// character that is neither whitespace, a label, a string, a number
// nor a recognized symbol.
func Tokenize(input string, opts Options) ([]Token, error) {
	var out []Token
	i := 0
	n := len(input)

	for i < n {
		ch := input[i]
		ws, letter, digit, sym := classify(ch)

		switch {
		case ws:
			start := i
			for i < n {
				w, _, _, _ := classify(input[i])
				if !w {
					break
				}
				i++
			}
			if opts.IncludeWhitespace {
				out = append(out, NewWhitespace(input[start:i]))
			}

		case letter:
			start := i
			i++
			for i < n {
				_, l, d, _ := classify(input[i])
				if l || (opts.LabelsHaveDigits && d) {
					i++
					continue
				}
				break
			}
			out = append(out, NewLabel(input[start:i]))

		case ch == '\'' || ch == '"':
			tok, newI, err := scanString(input, i, ch, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i = newI

		case digit:
			tok, newI, err := scanNumber(input, i, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i = newI

		case sym:
			out = append(out, NewSymbol(ch))
			i++

		default:
			return nil, newLexError(ErrUnrecognizedChar, i, "unrecognized character %q", ch)
		}
	}

	return out, nil
}

func scanString(input string, start int, quote byte, opts Options) (Token, int, error) {
	mode := Strong
	if quote == '\'' {
		mode = Weak
	}

	var raw []byte
	i := start + 1
	n := len(input)
	for {
		if i >= n {
			return Token{}, 0, newLexError(ErrUnterminatedStr, start, "unterminated string starting at %d", start)
		}
		ch := input[i]
		if ch == '\\' {
			if i+1 >= n {
				return Token{}, 0, newLexError(ErrDanglingEscape, i, "backslash at end of input with no following character")
			}
			if opts.ResolveEscapedStringCharacters {
				raw = append(raw, input[i+1])
			} else {
				raw = append(raw, ch, input[i+1])
			}
			i += 2
			continue
		}
		if ch == quote {
			i++
			break
		}
		raw = append(raw, ch)
		i++
	}

	return NewString(string(raw), mode), i, nil
}

func scanNumber(input string, start int, opts Options) (Token, int, error) {
	n := len(input)
	i := start
	for i < n {
		_, _, d, _ := classify(input[i])
		if !d {
			break
		}
		i++
	}

	if opts.CaptureDecimalNumbers && i < n && input[i] == '.' && i+1 < n {
		if _, _, d, _ := classify(input[i+1]); d {
			j := i + 1
			for j < n {
				_, _, d, _ := classify(input[j])
				if !d {
					break
				}
				j++
			}
			v, err := strconv.ParseFloat(input[start:j], 64)
			if err != nil {
				return Token{}, 0, newLexError(ErrUnrecognizedChar, start, "malformed decimal literal %q", input[start:j])
			}
			return NewDecimal(v), j, nil
		}
	}

	v, err := strconv.ParseInt(input[start:i], 10, 64)
	if err != nil {
		return Token{}, 0, newLexError(ErrUnrecognizedChar, start, "malformed integer literal %q", input[start:i])
	}
	return NewInteger(v), i, nil
}
