package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo              Code = 1000
	LexUnknownChar       Code = 1001
	LexUnknownCompound   Code = 1002
	LexUnterminatedBlock Code = 1004

	// Синтаксические
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
	SynExpectedEOF     Code = 2003

	// Семантические
	SemaInfo          Code = 3000
	SemaInvalidNumber Code = 3001
	SemaZeroBound     Code = 3002
	SemaBoundNotInt   Code = 3003

	// Ввод-вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		LexInfo:              "Lexical information",
		LexUnknownChar:       "Unknown character",
		LexUnknownCompound:   "Unknown compound operator",
		LexUnterminatedBlock: "Unterminated block comment",
		SynInfo:              "Syntax information",
		SynUnexpectedToken:   "Unexpected token",
		SynUnexpectedEOF:     "Unexpected end of input",
		SynExpectedEOF:       "Expected end of input",
		SemaInfo:             "Semantic information",
		SemaInvalidNumber:    "Invalid numeric literal",
		SemaZeroBound:        "Array bound must be positive",
		SemaBoundNotInt:      "Array bound must be an unsigned integer",
		IOLoadFileError:      "I/O load file error",
		IOCacheError:         "Token cache error",
		ObsInfo:              "Observability information",
		ObsTimings:           "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
