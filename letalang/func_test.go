package letalang

import (
	"bytes"
	"strings"
	"testing"
)

func TestFunctionReturn(t *testing.T) {
	interp, _ := runCode(t, `
		function foo() {
			return 1;
		}
		let a = foo();
	`)
	if getGlobal(t, interp, "a") != float64(1) {
		t.Fatal()
	}
}

func TestReturnWithoutValue(t *testing.T) {
	interp, _ := runCode(t, `
		function foo() {
			return;
		}
		let a = foo();
	`)
	if getGlobal(t, interp, "a") != nil {
		t.Fatal()
	}
}

func TestImplicitNullReturn(t *testing.T) {
	interp, _ := runCode(t, `
		function foo() {
			1 + 1;
		}
		let a = foo();
	`)
	if getGlobal(t, interp, "a") != nil {
		t.Fatal()
	}
}

func TestReturnStopsBlock(t *testing.T) {
	_, out := runCode(t, `
		function foo() {
			if (true) {
				return "early";
			}
			print "unreachable";
			return "late";
		}
		print foo();
	`)
	if out != "early\n" {
		t.Fatalf("got %q", out)
	}
}

func TestReturnFromLoop(t *testing.T) {
	interp, _ := runCode(t, `
		function firstOver(limit) {
			let i = 0;
			while (true) {
				i = i + 7;
				if (i > limit) {
					return i;
				}
			}
		}
		let a = firstOver(20);
	`)
	if getGlobal(t, interp, "a") != float64(21) {
		t.Fatal()
	}
}

func TestRecursion(t *testing.T) {
	interp, _ := runCode(t, `
		function fib(n) {
			if (n < 2) {
				return n;
			}
			return fib(n - 1) + fib(n - 2);
		}
		let a = fib(10);
	`)
	if getGlobal(t, interp, "a") != float64(55) {
		t.Fatal()
	}
}

func TestParameterShadowing(t *testing.T) {
	interp, _ := runCode(t, `
		let x = "global";
		function foo(x) {
			return x;
		}
		let a = foo("param");
	`)
	if getGlobal(t, interp, "a") != "param" {
		t.Fatal()
	}
	if getGlobal(t, interp, "x") != "global" {
		t.Fatal()
	}
}

func TestArityMismatch(t *testing.T) {
	err := runError(t, `
		function add(a, b) {
			return a + b;
		}
		add(1);
	`)
	if !strings.Contains(err.Error(), "expected 2 arguments but got 1") {
		t.Fatalf("got %v", err)
	}
}

func TestFunctionsAreValues(t *testing.T) {
	interp, _ := runCode(t, `
		function apply(f, x) {
			return f(x);
		}
		function double(n) {
			return n * 2;
		}
		let a = apply(double, 21);
	`)
	if getGlobal(t, interp, "a") != float64(42) {
		t.Fatal()
	}
}

func TestMaxCallDepth(t *testing.T) {
	interp := NewInterp(&Options{
		Output:       new(bytes.Buffer),
		MaxCallDepth: 16,
	})
	_, err := interp.Run(NewSource("test", `
		function loop() {
			return loop();
		}
		loop();
	`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "max call depth exceeded") {
		t.Fatalf("got %v", err)
	}
}
