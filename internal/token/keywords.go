package token

import "strings"

// keywords хранится в lowercase; регистр сворачивает сканер.
// Слово ключевого слова совпадает с именем его Kind.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind, KwBool-KwProgram+1)
	for _, k := range Kinds() {
		if k.IsKeyword() {
			m[strings.ToLower(k.String())] = k
		}
	}
	return m
}()

// LookupKeyword reports the keyword kind for an already lowercased word.
func LookupKeyword(folded string) (Kind, bool) {
	k, ok := keywords[folded]
	return k, ok
}

var singles = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'<': Lt,
	'>': Gt,
	'[': LBracket,
	']': RBracket,
	'(': LParen,
	')': RParen,
	'&': Amp,
	'|': Pipe,
	':': Colon,
	'.': Period,
	';': Semicolon,
	',': Comma,
}

// FromChar returns the kind of a single-character symbol.
func FromChar(ch rune) (Kind, bool) {
	k, ok := singles[ch]
	return k, ok
}

var compounds = map[string]Kind{
	":=": Assign,
	"==": EqEq,
	"!=": BangEq,
	"<=": LtEq,
	">=": GtEq,
}

// FromCompound returns the kind of a two-character operator.
func FromCompound(pair string) (Kind, bool) {
	k, ok := compounds[pair]
	return k, ok
}

// IsCompoundStart reports whether ch may begin a two-character operator.
func IsCompoundStart(ch rune) bool {
	switch ch {
	case ':', '=', '!', '<', '>':
		return true
	default:
		return false
	}
}
