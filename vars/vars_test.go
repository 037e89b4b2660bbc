package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	type Prompt string
	if got := FirstNonZero[Prompt]("", "lox> ", "> "); got != "lox> " {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero[Prompt]("", ""); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero[Prompt](); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[string](nil) != "" {
		t.Fatal()
	}
	s := "/tmp/lox_history"
	if DerefOrZero(&s) != s {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"no":    false,
		"0":     false,
		"maybe": false,
		"":      false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%q: expected %v", str, expected)
		}
	}
}
