package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fitzenctl %v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	if out := run(t, "--help"); out == "" {
		t.Fatalf("expected help output")
	}
}

func TestInitCreatesTables(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		run(t, "--data-dir", dir, "init")
	}
	for _, name := range []string{"users.csv", "recipes.csv", "chat_history.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRecipesImportJSONThenList(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "recipes.json")
	body := `[{"title":"Greek Salad","cuisine":"Mediterranean","calories":320},{"title":"Pad Thai","cuisine":"Thai","calories":610}]`
	if err := os.WriteFile(src, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if out := run(t, "--data-dir", dir, "recipes", "import", src); !strings.Contains(out, "Imported 2 recipes") {
		t.Fatalf("unexpected import output: %q", out)
	}

	out := run(t, "--data-dir", dir, "recipes", "list", "--cuisine", "thai")
	if !strings.Contains(out, "Pad Thai") || strings.Contains(out, "Greek Salad") {
		t.Fatalf("unexpected list output: %q", out)
	}
	recipesCuisine = ""
}

func TestRecipesImportCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "recipes.csv")
	body := "title,cuisine,calories,servings\nOats,Breakfast,350,1\n"
	if err := os.WriteFile(src, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	run(t, "--data-dir", dir, "recipes", "import", src)

	out := run(t, "--data-dir", dir, "tables")
	if !strings.Contains(out, "recipes.csv") {
		t.Fatalf("expected recipes table in output: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "recipes.csv") && !strings.Contains(line, " 1 ") {
			t.Fatalf("expected one recipe row, got %q", line)
		}
	}
}
