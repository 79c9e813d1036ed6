package letalang

import (
	"strings"
	"testing"
)

func TestClock(t *testing.T) {
	val := evalCode(t, "clock();")
	num, ok := val.(float64)
	if !ok {
		t.Fatalf("got %T", val)
	}
	if num <= 0 {
		t.Fatalf("got %v", num)
	}
}

func TestRandom(t *testing.T) {
	val := evalCode(t, "random();")
	num, ok := val.(float64)
	if !ok {
		t.Fatalf("got %T", val)
	}
	if num < 0 || num >= 1 {
		t.Fatalf("got %v", num)
	}
}

func TestLen(t *testing.T) {
	if got := evalCode(t, `len("hello");`); got != float64(5) {
		t.Fatalf("got %v", got)
	}
	err := runError(t, "len(1);")
	if !strings.Contains(err.Error(), "len expects a string") {
		t.Fatalf("got %v", err)
	}
}

func TestStr(t *testing.T) {
	if got := evalCode(t, "str(42);"); got != "42" {
		t.Fatalf("got %v", got)
	}
	if got := evalCode(t, "str(null);"); got != "null" {
		t.Fatalf("got %v", got)
	}
}

func TestNum(t *testing.T) {
	if got := evalCode(t, `num("3.5");`); got != float64(3.5) {
		t.Fatalf("got %v", got)
	}
	err := runError(t, `num("abc");`)
	if !strings.Contains(err.Error(), "cannot convert") {
		t.Fatalf("got %v", err)
	}
}

func TestType(t *testing.T) {
	cases := []struct {
		code     string
		expected string
	}{
		{"type(1);", "number"},
		{`type("a");`, "string"},
		{"type(true);", "bool"},
		{"type(null);", "null"},
		{"type(clock);", "function"},
		{"type(function() {});", "function"},
	}
	for _, c := range cases {
		if got := evalCode(t, c.code); got != c.expected {
			t.Fatalf("%s: got %v", c.code, got)
		}
	}
}
