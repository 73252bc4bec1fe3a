// Where: internal/domain/value/value_test.go
// What: Tests for value conversion helpers.
// Why: Keep the total lookup helpers stable across refactors.
package value

import (
	"strings"
	"testing"
)

func TestOptional(t *testing.T) {
	some := Some("abc")
	if v, ok := some.Get(); !ok || v != "abc" {
		t.Fatalf("Some.Get() = %q, %v", v, ok)
	}
	if got := None[string]().OrElse("fallback"); got != "fallback" {
		t.Fatalf("None.OrElse() = %q", got)
	}
	if got := None[int]().OrZero(); got != 0 {
		t.Fatalf("None.OrZero() = %d", got)
	}
	upper := Then(some, strings.ToUpper)
	if got := upper.OrZero(); got != "ABC" {
		t.Fatalf("Then(Some) = %q", got)
	}
	if Then(None[string](), strings.ToUpper).Present() {
		t.Fatalf("Then(None) should stay absent")
	}
}

func TestAt(t *testing.T) {
	items := []string{"a", "b"}
	if got := At(items, 1).OrZero(); got != "b" {
		t.Fatalf("At(1) = %q", got)
	}
	for _, i := range []int{-1, 2, 10} {
		if At(items, i).Present() {
			t.Fatalf("At(%d) should be absent", i)
		}
	}
	if At[string](nil, 0).Present() {
		t.Fatalf("At on nil slice should be absent")
	}
}

func TestValueHelpers(t *testing.T) {
	if got := AsString(123); got != "123" {
		t.Errorf("AsString(123) = %s", got)
	}
	if got := AsString(nil); got != "" {
		t.Errorf("AsString(nil) = %s", got)
	}
	if !AsBool(true) || !AsBool("true") || AsBool("yes") || AsBool(1) {
		t.Errorf("AsBool coercion mismatch")
	}
	if AsMap("not a map") != nil {
		t.Errorf("AsMap(scalar) should be nil")
	}
	if m := AsMap(map[string]any{"a": 1}); m["a"] != 1 {
		t.Errorf("AsMap = %v", m)
	}
	if _, ok := AsSlice("scalar"); ok {
		t.Errorf("AsSlice(scalar) should fail")
	}
	if s, ok := AsSlice([]any{"a"}); !ok || len(s) != 1 {
		t.Errorf("AsSlice = %v, %v", s, ok)
	}
}

func TestNormalize(t *testing.T) {
	in := map[string]any{
		"typedSlice": []map[string]any{{"a": 1}},
		"typedMap":   map[string]string{"k": "v"},
		"array":      [2]string{"x", "y"},
		"bytes":      []byte("raw"),
		"intKeys":    map[int]string{1: "one"},
		"scalar":     "s",
	}
	out, ok := Normalize(in).(map[string]any)
	if !ok {
		t.Fatalf("expected map result")
	}
	if s, ok := out["typedSlice"].([]any); !ok || AsMap(s[0])["a"] != 1 {
		t.Errorf("typedSlice = %#v", out["typedSlice"])
	}
	if m := AsMap(out["typedMap"]); m["k"] != "v" {
		t.Errorf("typedMap = %#v", out["typedMap"])
	}
	if s, ok := out["array"].([]any); !ok || len(s) != 2 || s[1] != "y" {
		t.Errorf("array = %#v", out["array"])
	}
	if _, ok := out["bytes"].([]byte); !ok {
		t.Errorf("bytes should stay []byte: %#v", out["bytes"])
	}
	if _, ok := out["intKeys"].(map[int]string); !ok {
		t.Errorf("non-string keyed maps stay unchanged: %#v", out["intKeys"])
	}
	if out["scalar"] != "s" {
		t.Errorf("scalar = %#v", out["scalar"])
	}

	src := map[string]any{"nested": []any{"a"}}
	copied := Normalize(src).(map[string]any)
	copied["nested"].([]any)[0] = "changed"
	if src["nested"].([]any)[0] != "a" {
		t.Errorf("Normalize should deep copy")
	}
}
