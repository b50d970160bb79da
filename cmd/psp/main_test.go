package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"pspkit/internal/console"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := levelFor(tt.name); got != tt.want {
			t.Errorf("levelFor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadCSV(t *testing.T) {
	t.Run("errors on an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		if err := os.WriteFile(path, []byte("X,Y\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadCSV(path); err == nil {
			t.Error("expected error for header-only file")
		}
	})

	t.Run("reads records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv")
		if err := os.WriteFile(path, []byte("X,Y\n1,2\n"), 0644); err != nil {
			t.Fatal(err)
		}
		data, err := loadCSV(path)
		if err != nil {
			t.Fatalf("loadCSV error: %v", err)
		}
		if len(data.Records) != 1 {
			t.Errorf("got %d records, want 1", len(data.Records))
		}
	})
}

func TestChooseXY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("A,B\n1,10\n2,20\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := loadCSV(path)
	if err != nil {
		t.Fatalf("loadCSV error: %v", err)
	}

	var out bytes.Buffer
	con := console.New(strings.NewReader("1\ny\n2\ny\n"), &out)

	xs, ys, err := chooseXY(con, data)
	if err != nil {
		t.Fatalf("chooseXY error: %v", err)
	}
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 2 {
		t.Errorf("xs = %v, want [1 2]", xs)
	}
	if len(ys) != 2 || ys[0] != 10 || ys[1] != 20 {
		t.Errorf("ys = %v, want [10 20]", ys)
	}
}

func TestValidateSizeColumns(t *testing.T) {
	valid := []string{"Name", "Category", "Parts", "Total LOC"}
	if err := validateSizeColumns(valid); err != nil {
		t.Errorf("valid columns rejected: %v", err)
	}

	shuffled := []string{"Total LOC", "Name", "Parts", "Category"}
	if err := validateSizeColumns(shuffled); err != nil {
		t.Errorf("column order should not matter: %v", err)
	}

	if err := validateSizeColumns([]string{"Name", "Category"}); err == nil {
		t.Error("expected error for missing columns")
	}
	if err := validateSizeColumns([]string{"Name", "Category", "Parts", "Size"}); err == nil {
		t.Error("expected error for a wrong column")
	}
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{120, "120"},
		{1.5, "1.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatMetric(tt.in); got != tt.want {
			t.Errorf("formatMetric(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
