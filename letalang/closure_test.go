package letalang

import (
	"fmt"
	"strings"
	"testing"
)

const makeCounterSrc = `
	function makeCounter() {
		let i = 0;

		function count() {
			i = i + 1;
			return i;
		}

		return count;
	}
`

func TestCounter(t *testing.T) {
	_, out := runCode(t, makeCounterSrc+`
		let counter = makeCounter();
		print counter();
		print counter();
		print counter;
	`)
	if out != "1\n2\n<fn count>\n" {
		t.Fatalf("got %q", out)
	}
}

func TestSharedMutation(t *testing.T) {
	// the K-th call observes K: all calls share one slot
	const n = 10
	var src strings.Builder
	src.WriteString(makeCounterSrc)
	src.WriteString("let counter = makeCounter();\n")
	for range n {
		src.WriteString("print counter();\n")
	}

	_, out := runCode(t, src.String())

	var expected strings.Builder
	for k := 1; k <= n; k++ {
		fmt.Fprintf(&expected, "%d\n", k)
	}
	if out != expected.String() {
		t.Fatalf("got %q", out)
	}
}

func TestIndependentInvocations(t *testing.T) {
	// each factory invocation allocates a fresh slot
	_, out := runCode(t, makeCounterSrc+`
		let a = makeCounter();
		let b = makeCounter();
		print a();
		print a();
		print a();
		print b();
		print a();
	`)
	if out != "1\n2\n3\n1\n4\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLexicalResolution(t *testing.T) {
	// names resolve at the definition site, not the call site
	_, out := runCode(t, `
		function makeGetter() {
			let x = "lexical";
			function get() {
				return x;
			}
			return get;
		}
		let getter = makeGetter();
		{
			let x = "dynamic";
			print getter();
		}
	`)
	if out != "lexical\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClosureOutlivesFrame(t *testing.T) {
	// the captured scope survives the defining call's return
	interp, _ := runCode(t, makeCounterSrc+`
		let counter = makeCounter();
		let a = counter();
		let b = counter();
	`)
	if getGlobal(t, interp, "a") != float64(1) {
		t.Fatal()
	}
	if getGlobal(t, interp, "b") != float64(2) {
		t.Fatal()
	}
}

func TestClosuresShareScopeInstance(t *testing.T) {
	// two closures from one invocation alias the same slot
	_, out := runCode(t, `
		let inc;
		let get;
		function make() {
			let i = 0;
			inc = function() {
				i = i + 1;
				return i;
			};
			get = function() {
				return i;
			};
		}
		make();
		inc();
		inc();
		print get();
	`)
	if out != "2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestCapturedParameter(t *testing.T) {
	// parameters are slots too
	_, out := runCode(t, `
		function makeAdder(x) {
			function add(y) {
				return x + y;
			}
			return add;
		}
		let add2 = makeAdder(2);
		print add2(40);
		print add2(0);
	`)
	if out != "42\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClosureReprStable(t *testing.T) {
	// printing a closure yields a stable, non-numeric representation
	_, out := runCode(t, makeCounterSrc+`
		let counter = makeCounter();
		print counter;
		print counter;
	`)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", out)
	}
	if lines[0] != lines[1] {
		t.Fatalf("reprs differ: %q vs %q", lines[0], lines[1])
	}
	if lines[0] != "<fn count>" {
		t.Fatalf("got %q", lines[0])
	}
}

func TestAnonymousFunctionNaming(t *testing.T) {
	// binding names an anonymous function; printing it is never numeric
	_, out := runCode(t, `
		let foo = function() { return 1; };
		print foo;
	`)
	if out != "<fn foo>\n" {
		t.Fatalf("got %q", out)
	}

	_, out = runCode(t, `
		let f;
		f = function() { return 1; };
		print f;
	`)
	if out != "<fn f>\n" {
		t.Fatalf("got %q", out)
	}

	_, out = runCode(t, `
		print function() { return 1; };
	`)
	if out != "<fn>\n" {
		t.Fatalf("got %q", out)
	}
}

func TestNativeFuncRepr(t *testing.T) {
	_, out := runCode(t, "print clock;")
	if out != "<native fn clock>\n" {
		t.Fatalf("got %q", out)
	}
}
