package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scripted returns a console reading the given input lines.
func scripted(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestBinaryChoice(t *testing.T) {
	t.Run("accepts either choice", func(t *testing.T) {
		con, _ := scripted("t\n")
		got, err := con.BinaryChoice("? ", "t", "a")
		if err != nil {
			t.Fatalf("BinaryChoice error: %v", err)
		}
		if got != "t" {
			t.Errorf("got %q, want t", got)
		}
	})

	t.Run("lowercases the answer", func(t *testing.T) {
		con, _ := scripted("A\n")
		got, err := con.BinaryChoice("? ", "t", "a")
		if err != nil {
			t.Fatalf("BinaryChoice error: %v", err)
		}
		if got != "a" {
			t.Errorf("got %q, want a", got)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		con, _ := scripted("x\n")
		if _, err := con.BinaryChoice("? ", "t", "a"); err == nil {
			t.Error("expected error for invalid choice")
		}
	})
}

func TestYesNo(t *testing.T) {
	con, out := scripted("y\nn\n")

	yes, err := con.YesNo("Continue?")
	if err != nil {
		t.Fatalf("YesNo error: %v", err)
	}
	if !yes {
		t.Error("expected yes")
	}

	yes, err = con.YesNo("Continue?")
	if err != nil {
		t.Fatalf("YesNo error: %v", err)
	}
	if yes {
		t.Error("expected no")
	}

	if !strings.Contains(out.String(), "(y/n)") {
		t.Errorf("prompt missing y/n hint: %q", out.String())
	}
}

func TestTryAgainOrAbort(t *testing.T) {
	con, _ := scripted("t\na\n")

	if err := con.TryAgainOrAbort(); err != nil {
		t.Errorf("try again should not error, got %v", err)
	}
	if err := con.TryAgainOrAbort(); !errors.Is(err, ErrAborted) {
		t.Errorf("abort should return ErrAborted, got %v", err)
	}
}

func TestConfirmedString(t *testing.T) {
	t.Run("returns the confirmed value", func(t *testing.T) {
		con, _ := scripted("hello\ny\n")
		got, err := con.ConfirmedString("Value: ")
		if err != nil {
			t.Fatalf("ConfirmedString error: %v", err)
		}
		if got != "hello" {
			t.Errorf("got %q, want hello", got)
		}
	})

	t.Run("re-prompts on rejection", func(t *testing.T) {
		con, _ := scripted("first\nn\nsecond\ny\n")
		got, err := con.ConfirmedString("Value: ")
		if err != nil {
			t.Fatalf("ConfirmedString error: %v", err)
		}
		if got != "second" {
			t.Errorf("got %q, want second", got)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		con, _ := scripted("a\nn\nb\nn\n")
		con.MaxAttempts = 2
		if _, err := con.ConfirmedString("Value: "); !errors.Is(err, ErrMaxAttempts) {
			t.Errorf("expected ErrMaxAttempts, got %v", err)
		}
	})

	t.Run("errors on end of input", func(t *testing.T) {
		con, _ := scripted("")
		if _, err := con.ConfirmedString("Value: "); err == nil {
			t.Error("expected error on EOF")
		}
	})
}

func TestConfirmedFloat(t *testing.T) {
	t.Run("returns the confirmed value", func(t *testing.T) {
		con, _ := scripted("2.5\ny\n")
		got, err := con.ConfirmedFloat("Value: ")
		if err != nil {
			t.Fatalf("ConfirmedFloat error: %v", err)
		}
		if got != 2.5 {
			t.Errorf("got %g, want 2.5", got)
		}
	})

	t.Run("offers a retry on invalid input", func(t *testing.T) {
		con, out := scripted("abc\nt\n3.14\ny\n")
		got, err := con.ConfirmedFloat("Value: ")
		if err != nil {
			t.Fatalf("ConfirmedFloat error: %v", err)
		}
		if got != 3.14 {
			t.Errorf("got %g, want 3.14", got)
		}
		if !strings.Contains(out.String(), "not a valid real number") {
			t.Errorf("missing error message: %q", out.String())
		}
	})

	t.Run("aborts on request", func(t *testing.T) {
		con, _ := scripted("abc\na\n")
		if _, err := con.ConfirmedFloat("Value: "); !errors.Is(err, ErrAborted) {
			t.Errorf("expected ErrAborted, got %v", err)
		}
	})
}

func TestConfirmedInt(t *testing.T) {
	t.Run("returns the confirmed value", func(t *testing.T) {
		con, _ := scripted("7\ny\n")
		got, err := con.ConfirmedInt("Count: ")
		if err != nil {
			t.Fatalf("ConfirmedInt error: %v", err)
		}
		if got != 7 {
			t.Errorf("got %d, want 7", got)
		}
	})

	t.Run("rejects non-integers", func(t *testing.T) {
		con, _ := scripted("2.5\ny\n")
		if _, err := con.ConfirmedInt("Count: "); err == nil {
			t.Error("expected error for non-integer")
		}
	})
}

func TestConfirmedList(t *testing.T) {
	t.Run("returns the confirmed list", func(t *testing.T) {
		con, _ := scripted("1, 2.5, 3\ny\n")
		got, err := con.ConfirmedList("Entry: ", 5)
		if err != nil {
			t.Fatalf("ConfirmedList error: %v", err)
		}
		want := []float64{1, 2.5, 3}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	})

	t.Run("offers a retry on invalid values", func(t *testing.T) {
		con, out := scripted("1,x\nt\n1,2\ny\n")
		got, err := con.ConfirmedList("Entry: ", 5)
		if err != nil {
			t.Fatalf("ConfirmedList error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %v, want [1 2]", got)
		}
		if !strings.Contains(out.String(), "not a valid list") {
			t.Errorf("missing error message: %q", out.String())
		}
	})

	t.Run("enforces the maximum length", func(t *testing.T) {
		con, out := scripted("1,2,3\na\n")
		if _, err := con.ConfirmedList("Entry: ", 2); !errors.Is(err, ErrAborted) {
			t.Errorf("expected ErrAborted, got %v", err)
		}
		if !strings.Contains(out.String(), "at most 2 values") {
			t.Errorf("missing error message: %q", out.String())
		}
	})
}

func TestChooseFromList(t *testing.T) {
	values := []string{"alpha", "beta", "gamma"}

	t.Run("returns the chosen value", func(t *testing.T) {
		con, out := scripted("2\ny\n")
		got, err := con.ChooseFromList("Pick one", values)
		if err != nil {
			t.Fatalf("ChooseFromList error: %v", err)
		}
		if got != "beta" {
			t.Errorf("got %q, want beta", got)
		}
		for _, line := range []string{"1) alpha", "2) beta", "3) gamma"} {
			if !strings.Contains(out.String(), line) {
				t.Errorf("menu missing %q: %q", line, out.String())
			}
		}
	})

	t.Run("retries on an out-of-range option", func(t *testing.T) {
		con, _ := scripted("9\ny\nt\n1\ny\n")
		got, err := con.ChooseFromList("Pick one", values)
		if err != nil {
			t.Fatalf("ChooseFromList error: %v", err)
		}
		if got != "alpha" {
			t.Errorf("got %q, want alpha", got)
		}
	})

	t.Run("retries on a non-numeric answer", func(t *testing.T) {
		con, _ := scripted("x\ny\nt\n3\ny\n")
		got, err := con.ChooseFromList("Pick one", values)
		if err != nil {
			t.Fatalf("ChooseFromList error: %v", err)
		}
		if got != "gamma" {
			t.Errorf("got %q, want gamma", got)
		}
	})
}

func TestExistingFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("accepts an existing file", func(t *testing.T) {
		con, _ := scripted(path + "\ny\n")
		got, err := con.ExistingFileName("File: ")
		if err != nil {
			t.Fatalf("ExistingFileName error: %v", err)
		}
		if got != path {
			t.Errorf("got %q, want %q", got, path)
		}
	})

	t.Run("aborts on a missing file", func(t *testing.T) {
		con, out := scripted("no-such-file\ny\na\n")
		if _, err := con.ExistingFileName("File: "); !errors.Is(err, ErrAborted) {
			t.Errorf("expected ErrAborted, got %v", err)
		}
		if !strings.Contains(out.String(), "does not exist") {
			t.Errorf("missing error message: %q", out.String())
		}
	})
}
