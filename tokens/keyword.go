package tokens

type KeywordKind uint8

const (
	And KeywordKind = iota
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

var keywords = map[string]KeywordKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

var keywordNames = func() map[KeywordKind]string {
	ret := make(map[KeywordKind]string, len(keywords))
	for name, kind := range keywords {
		ret[kind] = name
	}
	return ret
}()

func LookupKeyword(text string) (KeywordKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

func (k KeywordKind) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "?"
}
