package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Качество данных таблицы
	DataInfo            Code = 1000
	DataDuplicateKey    Code = 1001
	DataSelfMapping     Code = 1002
	DataEmptyForm       Code = 1003
	DataUnreachableKey  Code = 1004
	DataShadowedPhrase  Code = 1005
	DataUntrimmedSource Code = 1006

	// Ввод-вывод
	IOInfo       Code = 2000
	IOLoadError  Code = 2001
	IOWriteError Code = 2002

	// Проверка образцов
	CheckInfo           Code = 3000
	CheckSampleMismatch Code = 3001
	CheckAlreadyHaags   Code = 3002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		DataInfo:            "Dataset information",
		DataDuplicateKey:    "Duplicate source form",
		DataSelfMapping:     "Entry maps to itself",
		DataEmptyForm:       "Empty source or target form",
		DataUnreachableKey:  "Source form can never be matched",
		DataShadowedPhrase:  "Phrase repeats its word translations",
		DataUntrimmedSource: "Source form has irregular whitespace",
		IOInfo:              "I/O information",
		IOLoadError:         "I/O load file error",
		IOWriteError:        "I/O write file error",
		CheckInfo:           "Sample check information",
		CheckSampleMismatch: "Sample translation mismatch",
		CheckAlreadyHaags:   "Input already reads as Haags",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DAT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CHK%04d", ic)
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
