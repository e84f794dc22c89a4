package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dict: %v", err)
	}
	return path
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeDict(t, "alpha\n\n  beta  \n\ngamma\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestLoadSkipsPreamble(t *testing.T) {
	path := writeDict(t, "Copyright notice\nspanning lines\n---\none\ntwo\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("expected [one two], got %v", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeDict(t, "\n\n")
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("expected ErrEmptyWordList, got %v", err)
	}
}

func TestLoadMissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to name path %s, got %v", path, err)
	}
}

func TestNewSourceEmptyList(t *testing.T) {
	_, err := NewSource(nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("expected ErrEmptyWordList, got %v", err)
	}
}

func TestNextReturnsListMembers(t *testing.T) {
	list := []string{"the", "quick", "brown"}
	src, err := NewSource(list, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	members := map[string]struct{}{}
	for _, w := range list {
		members[w] = struct{}{}
	}
	for i := 0; i < 200; i++ {
		w := src.Next()
		if _, ok := members[w]; !ok {
			t.Fatalf("word %q is not a member of the list", w)
		}
	}
}

func TestFixedSeedIsDeterministic(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}
	first, err := NewSource(list, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	second, err := NewSource(list, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	a := first.Fill(50)
	b := second.Fill(50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequences diverge at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
