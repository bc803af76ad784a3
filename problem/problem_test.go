package problem

import (
	"errors"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Severity(42), "severity(42)"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("String(%d): got %q, want %q", int(tt.sev), got, tt.want)
		}
	}
}

func TestHasError(t *testing.T) {
	if HasError(nil) {
		t.Error("no problems, no error")
	}
	if HasError([]Problem{Infof("i"), Warnf("w")}) {
		t.Error("info and warning are not errors")
	}
	if !HasError([]Problem{Infof("i"), Errorf("e")}) {
		t.Error("error severity not detected")
	}
}

func TestFromErr(t *testing.T) {
	base := errors.New("broken")
	p := FromErr(base)
	if p.Severity != Error {
		t.Errorf("severity: got %s, want error", p.Severity)
	}
	if !errors.Is(p.Unwrap(), base) {
		t.Error("Unwrap lost the cause")
	}
	if !strings.Contains(p.String(), "broken") {
		t.Errorf("String: got %q", p.String())
	}
}

func TestResult(t *testing.T) {
	r := Ok(42)
	if v, ok := r.Get(); !ok || v != 42 {
		t.Errorf("Get: got (%d, %t), want (42, true)", v, ok)
	}

	r = r.WithProblems(Warnf("shaky"))
	if v, ok := r.Get(); !ok || v != 42 {
		t.Error("warnings should not invalidate the value")
	}
	if r.HasError() {
		t.Error("warning reported as error")
	}

	r = r.WithProblems(Errorf("bad"))
	if _, ok := r.Get(); ok {
		t.Error("error-severity result still has a value")
	}
	if !r.HasError() {
		t.Error("HasError missed the error")
	}
	if len(r.Problems()) != 2 {
		t.Errorf("problems: got %d, want 2", len(r.Problems()))
	}

	if _, ok := Empty[int](Infof("nothing to do")).Get(); ok {
		t.Error("empty result has a value")
	}
}

func TestJoin(t *testing.T) {
	got := Join([]Problem{Warnf("first"), Errorf("second")})
	want := "warning: first\nerror: second"
	if got != want {
		t.Errorf("Join: got %q, want %q", got, want)
	}
}
