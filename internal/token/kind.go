package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the scanner never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier; Text holds the lowercased name.
	Ident
	// NumberLit represents a numeric literal; Text holds the raw digits.
	NumberLit
	// StringLit represents a string literal; Text holds the content between quotes.
	StringLit

	KwProgram   // program
	KwIs        // is
	KwBegin     // begin
	KwEnd       // end
	KwGlobal    // global
	KwProcedure // procedure
	KwVariable  // variable
	KwFor       // for
	KwNot       // not
	KwIf        // if
	KwThen      // then
	KwElse      // else
	KwReturn    // return
	KwTrue      // true
	KwFalse     // false

	KwInteger // integer
	KwFloat   // float
	KwString  // string
	KwBool    // bool

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Gt        // >
	Lt        // <
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Amp       // &
	Pipe      // |
	Colon     // :
	Period    // .
	Semicolon // ;
	Comma     // ,

	GtEq   // >=
	LtEq   // <=
	EqEq   // ==
	BangEq // !=
	Assign // :=

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Identifier",
	NumberLit:   "NumberLiteral",
	StringLit:   "StringLiteral",
	KwProgram:   "Program",
	KwIs:        "Is",
	KwBegin:     "Begin",
	KwEnd:       "End",
	KwGlobal:    "Global",
	KwProcedure: "Procedure",
	KwVariable:  "Variable",
	KwFor:       "For",
	KwNot:       "Not",
	KwIf:        "If",
	KwThen:      "Then",
	KwElse:      "Else",
	KwReturn:    "Return",
	KwTrue:      "True",
	KwFalse:     "False",
	KwInteger:   "Integer",
	KwFloat:     "Float",
	KwString:    "String",
	KwBool:      "Bool",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Mult",
	Slash:       "Div",
	Gt:          "GreaterThan",
	Lt:          "LessThan",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LParen:      "LParen",
	RParen:      "RParen",
	Amp:         "Amp",
	Pipe:        "Pipe",
	Colon:       "Colon",
	Period:      "Period",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	GtEq:        "GreaterThanEq",
	LtEq:        "LessThanEq",
	EqEq:        "EqualsComp",
	BangEq:      "NotEquals",
	Assign:      "Assignment",
}

// String returns the grammar name of the kind ("Program", "Assignment", ...).
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Kinds returns every valid kind except Invalid, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := EOF; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// HasPayload reports whether tokens of this kind carry text.
func (k Kind) HasPayload() bool {
	switch k {
	case Ident, NumberLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the kind is a reserved word, type names included.
func (k Kind) IsKeyword() bool {
	return k >= KwProgram && k <= KwBool
}

// IsTypeMark reports whether the kind names one of the four built-in types.
func (k Kind) IsTypeMark() bool {
	switch k {
	case KwInteger, KwFloat, KwString, KwBool:
		return true
	default:
		return false
	}
}

