package report

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("Name", "Size")
	if err := table.AddRow("foo", "10"); err != nil {
		t.Fatalf("AddRow error: %v", err)
	}
	if err := table.AddRow("bar", "20"); err != nil {
		t.Fatalf("AddRow error: %v", err)
	}

	rendered := table.Render()
	for _, want := range []string{"Name", "Size", "foo", "10", "bar", "20"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered table missing %q:\n%s", want, rendered)
		}
	}
	if !strings.Contains(rendered, "│") {
		t.Errorf("rendered table missing borders:\n%s", rendered)
	}
}

func TestTableAddRow_ArityMismatch(t *testing.T) {
	table := NewTable("A", "B", "C")

	if err := table.AddRow("1", "2"); err == nil {
		t.Error("expected error for too few values")
	}
	if err := table.AddRow("1", "2", "3", "4"); err == nil {
		t.Error("expected error for too many values")
	}
}

func TestHeading(t *testing.T) {
	got := Heading("REPORT", '=')
	want := "REPORT\n======"
	if got != want {
		t.Errorf("Heading = %q, want %q", got, want)
	}

	got = Heading("Size", '-')
	if got != "Size\n----" {
		t.Errorf("Heading = %q", got)
	}
}
