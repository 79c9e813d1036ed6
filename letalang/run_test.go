package letalang

import (
	"bytes"
	"testing"
)

func TestRunResultValue(t *testing.T) {
	// the last top-level expression statement is the result
	if got := evalCode(t, "1 + 1; 2 + 2;"); got != float64(4) {
		t.Fatalf("got %v", got)
	}

	// declarations yield no result
	if got := evalCode(t, "let a = 1;"); got != nil {
		t.Fatalf("got %v", got)
	}

	// a top-level return stops the program
	_, out := runCode(t, `
		return 42;
		print "unreachable";
	`)
	if out != "" {
		t.Fatalf("got %q", out)
	}
}

func TestEvalPersistsGlobals(t *testing.T) {
	interp := NewInterp(&Options{
		Output: new(bytes.Buffer),
	})

	if _, err := interp.Eval("repl", "let x = 1;"); err != nil {
		t.Fatal(err)
	}
	val, err := interp.Eval("repl", "x + 1")
	if err != nil {
		t.Fatal(err)
	}
	if val != float64(2) {
		t.Fatalf("got %v", val)
	}

	// closures persist across chunks too
	if _, err := interp.Eval("repl", `
		function makeCounter() {
			let i = 0;
			function count() {
				i = i + 1;
				return i;
			}
			return count;
		}
		let counter = makeCounter();
	`); err != nil {
		t.Fatal(err)
	}
	if val, _ := interp.Eval("repl", "counter()"); val != float64(1) {
		t.Fatalf("got %v", val)
	}
	if val, _ := interp.Eval("repl", "counter()"); val != float64(2) {
		t.Fatalf("got %v", val)
	}
}

func TestExtraGlobals(t *testing.T) {
	buf := new(bytes.Buffer)
	interp := NewInterp(&Options{
		Output: buf,
		Globals: map[string]Value{
			"answer": float64(42),
		},
	})
	val, err := interp.Run(NewSource("test", "answer;"))
	if err != nil {
		t.Fatal(err)
	}
	if val != float64(42) {
		t.Fatalf("got %v", val)
	}
}
