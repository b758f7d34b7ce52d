package token

var keywords = map[string]Kind{
	"component": KwComponent,
	"page":      KwPage,
	"layout":    KwLayout,
	"props":     KwProps,
	"state":     KwState,
	"event":     KwEvent,
	"import":    KwImport,
	"export":    KwExport,
	"from":      KwFrom,
	"if":        KwIf,
	"else":      KwElse,
	"for":       KwFor,
	"in":        KwIn,
	"let":       KwLet,
	"return":    KwReturn,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case-sensitive; only the lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

func keywordSpelling(k Kind) (string, bool) {
	for s, kw := range keywords {
		if kw == k {
			return s, true
		}
	}
	return "", false
}
