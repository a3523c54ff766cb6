package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCommand executes cmd with args, a quiet logger and captured stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	cmd.SetContext(withLogger(context.Background(), newLogger(io.Discard, charmlog.ErrorLevel)))
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCombCommand(t *testing.T) {
	out, err := runCommand(t, newCombCmd(), "-k", "2", "a", "b", "c")
	if err != nil {
		t.Fatalf("comb: %v", err)
	}
	want := "a b\na c\nb c\n"
	if out != want {
		t.Errorf("comb output = %q, want %q", out, want)
	}
}

func TestCombCommandInvalidSize(t *testing.T) {
	if _, err := runCommand(t, newCombCmd(), "-k", "5", "a", "b"); err == nil {
		t.Error("expected error for k > n")
	}
}

func TestCombCommandInputFile(t *testing.T) {
	path := writeTempInput(t, `elements = ["x", "y", "z"]`)

	out, err := runCommand(t, newCombCmd(), "-k", "2", "--input", path)
	if err != nil {
		t.Fatalf("comb: %v", err)
	}
	if got := lines(out); len(got) != 3 || got[0] != "x y" {
		t.Errorf("comb output = %q", out)
	}
}

func TestPermCommand(t *testing.T) {
	out, err := runCommand(t, newPermCmd(), "b", "a")
	if err != nil {
		t.Fatalf("perm: %v", err)
	}
	want := "a b\nb a\n"
	if out != want {
		t.Errorf("perm output = %q, want %q", out, want)
	}
}

func TestPermCommandMaxCap(t *testing.T) {
	out, err := runCommand(t, newPermCmd(), "--max", "2", "a", "b", "c")
	if err != nil {
		t.Fatalf("perm: %v", err)
	}
	if got := lines(out); len(got) != 2 {
		t.Errorf("expected 2 capped results, got %d: %q", len(got), out)
	}
}

func TestKPermCommand(t *testing.T) {
	out, err := runCommand(t, newKPermCmd(), "-k", "2", "a", "b", "c")
	if err != nil {
		t.Fatalf("kperm: %v", err)
	}
	if got := lines(out); len(got) != 6 {
		t.Errorf("P(3,2) should emit 6 rows, got %d: %q", len(got), out)
	}
}

func TestGosperCommand(t *testing.T) {
	out, err := runCommand(t, newGosperCmd(), "-n", "5", "-k", "3")
	if err != nil {
		t.Fatalf("gosper: %v", err)
	}
	got := lines(out)
	if len(got) != 10 {
		t.Fatalf("C(5,3) should emit 10 masks, got %d", len(got))
	}
	if got[0] != "00111" || got[9] != "11100" {
		t.Errorf("mask rows = %v", got)
	}
}

func TestGosperCommandIndices(t *testing.T) {
	out, err := runCommand(t, newGosperCmd(), "-n", "4", "-k", "1", "--indices")
	if err != nil {
		t.Fatalf("gosper: %v", err)
	}
	want := "0\n1\n2\n3\n"
	if out != want {
		t.Errorf("indices output = %q, want %q", out, want)
	}
}

func TestGosperCommandDegenerate(t *testing.T) {
	out, err := runCommand(t, newGosperCmd(), "-n", "70", "-k", "3")
	if err != nil {
		t.Fatalf("gosper must not error on out-of-range parameters: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty enumeration, got %q", out)
	}
}

func TestPowerSetCommand(t *testing.T) {
	out, err := runCommand(t, newPowerSetCmd(), "1", "2", "3")
	if err != nil {
		t.Fatalf("powerset: %v", err)
	}
	got := lines(out)
	if len(got) != 8 {
		t.Fatalf("2^3 should emit 8 rows, got %d", len(got))
	}
	if got[5] != "101\t1 3" {
		t.Errorf("mask-5 row = %q, want %q", got[5], "101\t1 3")
	}
}

func TestProductCommand(t *testing.T) {
	out, err := runCommand(t, newProductCmd(), "--second", "a,b,c", "1", "2")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	got := lines(out)
	if len(got) != 6 {
		t.Fatalf("2x3 product should emit 6 rows, got %d", len(got))
	}
	if got[0] != "1\ta" || got[5] != "2\tc" {
		t.Errorf("product rows = %v", got)
	}
}

func TestProductCommandFromFile(t *testing.T) {
	path := writeTempInput(t, `
elements = ["1", "2"]
second = ["x"]
`)
	out, err := runCommand(t, newProductCmd(), "--input", path)
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if got := lines(out); len(got) != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestProductCommandMissingSecond(t *testing.T) {
	if _, err := runCommand(t, newProductCmd(), "1", "2"); err == nil {
		t.Error("expected error when second sequence is absent")
	}
}
