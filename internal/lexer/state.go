package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/cooldudemcgeexl/crust/internal/token"
)

// state is the scanner's position inside the token being built.
type state uint8

const (
	stateNone         state = iota // между токенами
	stateCompound                  // первая половина := == != <= >=
	stateIdent                     // ключевое слово или идентификатор
	stateString                    // внутри "..."
	stateNumber                    // цифры, '_' и одна '.'
	stateSlash                     // '/' ещё не ясно: Div или комментарий
	stateLineComment               // // до конца строки
	stateBlockComment              // /* ... */, вложенные
)

func (s state) String() string {
	switch s {
	case stateNone:
		return "None"
	case stateCompound:
		return "CompoundSymbol"
	case stateIdent:
		return "Identifier"
	case stateString:
		return "StringLiteral"
	case stateNumber:
		return "NumberLiteral"
	case stateSlash:
		return "Slash"
	case stateLineComment:
		return "LineComment"
	case stateBlockComment:
		return "BlockComment"
	default:
		return "unknown"
	}
}

// step feeds one character (r, with its raw bytes) to the state machine.
// advance=false means the character was not consumed: the current run was
// flushed and the same character must be classified again from stateNone.
func (lx *Lexer) step(r rune, raw []byte) (advance bool, err error) {
	switch lx.st {
	case stateNone:
		return lx.stepNone(r, raw)

	case stateIdent:
		if isIdentContinue(r) {
			lx.acc.Write(raw)
			return true, nil
		}
		lx.flushIdent()
		return false, nil

	case stateNumber:
		if isDec(r) || r == '_' || (r == '.' && !strings.Contains(lx.acc.String(), ".")) {
			lx.acc.Write(raw)
			return true, nil
		}
		lx.flushNumber()
		return false, nil

	case stateString:
		if r == '"' {
			sp := lx.cursor.SpanFrom(lx.start)
			sp.End++ // закрывающая кавычка
			lx.emit(token.StringLit, lx.acc.String(), sp)
			lx.reset()
			return true, nil
		}
		lx.acc.Write(raw)
		return true, nil

	case stateCompound:
		first := lx.acc.String()
		pair := first + string(raw)
		if k, ok := token.FromCompound(pair); ok {
			sp := lx.cursor.SpanFrom(lx.start)
			sp.End = lx.cursor.SpanOf(len(raw)).End
			lx.emit(k, "", sp)
			lx.reset()
			return true, nil
		}
		// не пара: первый символ переосмысливаем как одиночный,
		// текущий символ начнёт новый токен
		if k, ok := token.FromChar(firstRune(first)); ok {
			lx.emit(k, "", lx.cursor.SpanFrom(lx.start))
			lx.reset()
			return false, nil
		}
		sp := lx.cursor.SpanFrom(lx.start)
		sp.End = lx.cursor.SpanOf(len(raw)).End
		return false, &token.CompoundTokenError{Text: pair, Span: sp}

	case stateSlash:
		switch r {
		case '/':
			lx.st = stateLineComment
			return true, nil
		case '*':
			lx.st = stateBlockComment
			lx.depth = 1
			lx.prev = 0
			return true, nil
		}
		lx.emit(token.Slash, "", lx.cursor.SpanFrom(lx.start))
		lx.reset()
		return false, nil

	case stateLineComment:
		if r == '\n' {
			lx.reset()
		}
		return true, nil

	case stateBlockComment:
		switch {
		case lx.prev == '/' && r == '*':
			lx.depth++
			lx.prev = 0
		case lx.prev == '*' && r == '/':
			lx.depth--
			lx.prev = 0
			if lx.depth == 0 {
				lx.reset()
			}
		default:
			lx.prev = r
		}
		return true, nil
	}
	panic("lexer: unknown state " + lx.st.String())
}

func (lx *Lexer) stepNone(r rune, raw []byte) (bool, error) {
	switch {
	case isSpace(r):
		return true, nil
	case isIdentStart(r):
		lx.begin(stateIdent, raw)
	case isDec(r):
		lx.begin(stateNumber, raw)
	case r == '"':
		lx.begin(stateString, nil)
	case r == '/':
		lx.begin(stateSlash, nil)
	case token.IsCompoundStart(r):
		lx.begin(stateCompound, raw)
	default:
		k, ok := token.FromChar(r)
		if !ok {
			return false, &token.SingleTokenError{Char: r, Span: lx.cursor.SpanOf(len(raw))}
		}
		lx.emit(k, "", lx.cursor.SpanOf(len(raw)))
	}
	return true, nil
}

// finish flushes whatever run is open when the input ends.
func (lx *Lexer) finish() error {
	switch lx.st {
	case stateNone, stateLineComment:
	case stateIdent:
		lx.flushIdent()
	case stateNumber:
		lx.flushNumber()
	case stateString:
		// незакрытая строка уходит как есть, до конца входа
		lx.emit(token.StringLit, lx.acc.String(), lx.cursor.SpanFrom(lx.start))
	case stateBlockComment:
		return &token.UnterminatedError{What: "block comment", Span: lx.cursor.SpanFrom(lx.start)}
	case stateSlash:
		lx.emit(token.Slash, "", lx.cursor.SpanFrom(lx.start))
	case stateCompound:
		first := firstRune(lx.acc.String())
		sp := lx.cursor.SpanFrom(lx.start)
		k, ok := token.FromChar(first)
		if !ok {
			return &token.SingleTokenError{Char: first, Span: sp}
		}
		lx.emit(k, "", sp)
	}
	lx.reset()
	return nil
}

// flushIdent classifies the accumulated word: keyword on a case-insensitive
// hit, otherwise Ident holding the lowercased text.
func (lx *Lexer) flushIdent() {
	folded := lx.fold.String(lx.acc.String())
	sp := lx.cursor.SpanFrom(lx.start)
	if k, ok := token.LookupKeyword(folded); ok {
		lx.emit(k, "", sp)
	} else {
		lx.emit(token.Ident, folded, sp)
	}
	lx.reset()
}

func (lx *Lexer) flushNumber() {
	lx.emit(token.NumberLit, lx.fold.String(lx.acc.String()), lx.cursor.SpanFrom(lx.start))
	lx.reset()
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
