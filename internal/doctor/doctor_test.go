package doctor

import (
	"context"
	"testing"
)

// stubCheck is a test double that returns preconfigured results.
type stubCheck struct {
	results []CheckResult
	called  bool
	path    string
}

func (s *stubCheck) Run(_ context.Context, path string) []CheckResult {
	s.called = true
	s.path = path
	return s.results
}

func newPassingCheck(name string) *stubCheck {
	return &stubCheck{results: []CheckResult{{Name: name, Passed: true, Severity: SeverityError}}}
}

func newFailingCheck(name string, severity Severity) *stubCheck {
	return &stubCheck{results: []CheckResult{
		{Name: name, Passed: false, Severity: severity, Details: name + " failed", Suggestion: "Fix " + name},
	}}
}

func TestDiagnosticRunner(t *testing.T) {
	t.Run("it returns an empty report when no checks are registered", func(t *testing.T) {
		report := NewDiagnosticRunner().RunAll(context.Background(), "glossary.txt")

		if len(report.Results) != 0 {
			t.Errorf("expected 0 results, got %d", len(report.Results))
		}
		if report.HasErrors() || report.ErrorCount() != 0 || report.WarningCount() != 0 {
			t.Error("expected no errors or warnings for empty report")
		}
	})

	t.Run("it passes the input path to every check", func(t *testing.T) {
		check := newPassingCheck("Encoding")
		runner := NewDiagnosticRunner()
		runner.Register(check)
		runner.RunAll(context.Background(), "/tmp/glossary.txt")

		if check.path != "/tmp/glossary.txt" {
			t.Errorf("path = %q, want /tmp/glossary.txt", check.path)
		}
	})

	t.Run("it does not short-circuit after a failing check", func(t *testing.T) {
		first := newFailingCheck("Encoding", SeverityError)
		second := newPassingCheck("Malformed lines")
		third := newFailingCheck("Duplicate records", SeverityWarning)

		runner := NewDiagnosticRunner()
		runner.Register(first)
		runner.Register(second)
		runner.Register(third)
		report := runner.RunAll(context.Background(), "")

		if !first.called || !second.called || !third.called {
			t.Error("expected every check to run")
		}
		if len(report.Results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(report.Results))
		}
		if report.ErrorCount() != 1 {
			t.Errorf("ErrorCount() = %d, want 1", report.ErrorCount())
		}
		if report.WarningCount() != 1 {
			t.Errorf("WarningCount() = %d, want 1", report.WarningCount())
		}
	})

	t.Run("it preserves registration order in results", func(t *testing.T) {
		runner := NewDiagnosticRunner()
		runner.Register(newPassingCheck("Alpha"))
		runner.Register(newPassingCheck("Beta"))
		runner.Register(newPassingCheck("Gamma"))
		report := runner.RunAll(context.Background(), "")

		for i, name := range []string{"Alpha", "Beta", "Gamma"} {
			if report.Results[i].Name != name {
				t.Errorf("result[%d].Name = %q, want %q", i, report.Results[i].Name, name)
			}
		}
	})

	t.Run("it registers every glossary check in display order", func(t *testing.T) {
		path := writeGlossary(t, "cat\tneko\n")
		report := NewGlossaryRunner().RunAll(context.Background(), path)

		want := []string{"Encoding", "Byte-order mark", "Malformed lines", "Duplicate records", "Conflicting targets"}
		if len(report.Results) != len(want) {
			t.Fatalf("expected %d results, got %d", len(want), len(report.Results))
		}
		for i, name := range want {
			if report.Results[i].Name != name || !report.Results[i].Passed {
				t.Errorf("result[%d] = %+v, want passing %q", i, report.Results[i], name)
			}
		}
	})
}

func TestDiagnosticReport(t *testing.T) {
	t.Run("HasErrors is false when only warnings fail", func(t *testing.T) {
		report := DiagnosticReport{Results: []CheckResult{
			{Name: "Encoding", Passed: true, Severity: SeverityError},
			{Name: "Duplicate records", Passed: false, Severity: SeverityWarning, Details: "dupes"},
		}}
		if report.HasErrors() {
			t.Error("expected HasErrors() false")
		}
	})

	t.Run("counts ignore passing results", func(t *testing.T) {
		report := DiagnosticReport{Results: []CheckResult{
			{Name: "Encoding", Passed: false, Severity: SeverityError, Details: "bad"},
			{Name: "Byte-order mark", Passed: true, Severity: SeverityWarning},
			{Name: "Duplicate records", Passed: false, Severity: SeverityWarning, Details: "dupes"},
			{Name: "Conflicting targets", Passed: false, Severity: SeverityWarning, Details: "conflict"},
		}}
		if report.ErrorCount() != 1 {
			t.Errorf("ErrorCount() = %d, want 1", report.ErrorCount())
		}
		if report.WarningCount() != 2 {
			t.Errorf("WarningCount() = %d, want 2", report.WarningCount())
		}
	})
}
