package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadEscape           Code = 1004
	LexTokenTooLong        Code = 1005

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynMismatchedTag    Code = 2002
	SynUnclosedElement  Code = 2003
	SynDuplicateDecl    Code = 2004
	SynDuplicateName    Code = 2005
	SynBadDefault       Code = 2006
	SynSectionOrder     Code = 2007
	SynNestingTooDeep   Code = 2008
	SynUnknownType      Code = 2009
	SynInvalidTarget    Code = 2010
	SynInvalidStructure Code = 2011
	SynReservedName     Code = 2012

	// Generation
	GenInfo          Code = 3000
	GenInvalidTree   Code = 3001
	GenNameCollision Code = 3002

	// IO
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Project
	ProjManifestInvalid  Code = 5001
	ProjNoSources        Code = 5002
	ProjUnknownKey       Code = 5003
	ProjImportCycle      Code = 5004
	ProjSelfImport       Code = 5005
	ProjDependencyFailed Code = 5006
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated block comment",
	LexBadEscape:           "Invalid escape sequence",
	LexTokenTooLong:        "Token too long",

	SynInfo:             "Syntax information",
	SynUnexpectedToken:  "Unexpected token",
	SynMismatchedTag:    "Mismatched closing tag",
	SynUnclosedElement:  "Element is not closed",
	SynDuplicateDecl:    "Duplicate declaration",
	SynDuplicateName:    "Duplicate name",
	SynBadDefault:       "Invalid default value",
	SynSectionOrder:     "Declaration sections out of order",
	SynNestingTooDeep:   "Nesting too deep",
	SynUnknownType:      "Unknown type",
	SynInvalidTarget:    "Invalid assignment target",
	SynInvalidStructure: "Invalid declaration structure",
	SynReservedName:     "Reserved name",

	GenInfo:          "Generation information",
	GenInvalidTree:   "Malformed syntax tree",
	GenNameCollision: "Generated name collision",

	IOLoadFileError:  "Failed to load file",
	IOWriteFileError: "Failed to write file",
	IOCacheError:     "Cache failure",

	ProjManifestInvalid:  "Invalid lumen.toml",
	ProjNoSources:        "No source files",
	ProjUnknownKey:       "Unknown manifest key",
	ProjImportCycle:      "Import cycle",
	ProjSelfImport:       "File imports itself",
	ProjDependencyFailed: "Imported file has errors",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
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
