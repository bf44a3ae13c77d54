package driver_test

import (
	"strings"
	"testing"

	"github.com/sillylang/silly/internal/compiler/ast"
	"github.com/sillylang/silly/internal/compiler/driver"
)

func TestCategoryDispatch(t *testing.T) {
	input := `
def foo(a b) a+b
extern sin(x)
foo(1, 2)
`
	results := driver.Parse(input)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	expected := []driver.ResultKind{driver.KindDefinition, driver.KindExtern, driver.KindExpression}
	for i, kind := range expected {
		if results[i].Kind != kind {
			t.Errorf("results[%d].Kind expected=%v, got=%v", i, kind, results[i].Kind)
		}
		if results[i].Err != nil {
			t.Errorf("results[%d] unexpected error: %v", i, results[i].Err)
		}
		if results[i].Node == nil {
			t.Errorf("results[%d].Node is nil", i)
		}
	}

	if _, ok := results[0].Node.(*ast.Function); !ok {
		t.Errorf("results[0].Node is not *ast.Function. got=%T", results[0].Node)
	}
	if _, ok := results[1].Node.(*ast.Prototype); !ok {
		t.Errorf("results[1].Node is not *ast.Prototype. got=%T", results[1].Node)
	}
}

func TestKindMessages(t *testing.T) {
	tests := []struct {
		kind driver.ResultKind
		want string
	}{
		{driver.KindDefinition, "Parsed a function definition."},
		{driver.KindExtern, "Parsed an extern"},
		{driver.KindExpression, "Parsed a top-level expr"},
	}
	for _, tt := range tests {
		if got := tt.kind.Message(); got != tt.want {
			t.Errorf("Message() expected=%q, got=%q", tt.want, got)
		}
	}
}

// A failed construct must consume exactly one token and resume, so
// unparseable input still terminates.
func TestErrorRecoveryMakesProgress(t *testing.T) {
	results := driver.Parse("def )")

	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	first := results[0]
	if first.Err == nil {
		t.Fatal("expected first result to carry an error")
	}
	if !strings.Contains(first.Err.Error(), "Expected function name in prototype") {
		t.Errorf("unexpected error: %v", first.Err)
	}

	// "def )" is two tokens: the failed definition consumed 'def' and the
	// recovery skip consumes ')', so the session ends after one result.
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestErrorRecoveryResumes(t *testing.T) {
	results := driver.Parse("def ) 42")

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("results[0] should carry an error")
	}
	if results[1].Err != nil {
		t.Errorf("results[1] unexpected error: %v", results[1].Err)
	}
	if results[1].Kind != driver.KindExpression {
		t.Errorf("results[1].Kind expected=%v, got=%v", driver.KindExpression, results[1].Kind)
	}
}

func TestTopLevelSemicolonsIgnored(t *testing.T) {
	results := driver.Parse(";; 42 ;; x ;;")

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Errorf("results[%d] unexpected error: %v", i, res.Err)
		}
		if res.Kind != driver.KindExpression {
			t.Errorf("results[%d].Kind expected=%v, got=%v", i, driver.KindExpression, res.Kind)
		}
	}
}

func TestCommentsAreInvisible(t *testing.T) {
	plain := driver.Parse("42")
	commented := driver.Parse("# comment\n42")

	if len(plain) != 1 || len(commented) != 1 {
		t.Fatalf("expected 1 result each, got %d and %d", len(plain), len(commented))
	}
	if plain[0].Node.String() != commented[0].Node.String() {
		t.Errorf("comment changed the parse: %s vs %s",
			plain[0].Node.String(), commented[0].Node.String())
	}
}

func TestEmptyInput(t *testing.T) {
	if results := driver.Parse(""); len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
	if results := driver.Parse("# only a comment"); len(results) != 0 {
		t.Errorf("expected no results for comment-only input, got %d", len(results))
	}
}

// Illegal characters at the top level fail the expression parse and are
// consumed by recovery, one per attempt.
func TestIllegalTokensDrain(t *testing.T) {
	results := driver.Parse("@ $ 7")

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err == nil || results[1].Err == nil {
		t.Error("illegal tokens should produce errors")
	}
	if results[2].Err != nil {
		t.Errorf("results[2] unexpected error: %v", results[2].Err)
	}
}
