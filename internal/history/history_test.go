package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddMovesToFrontAndPersists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "history.json")
	s, err := Open(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"3.11", "3.12", " 3.11 ", "", "3.13", "pypy@3.10"} {
		if err := s.Add(v); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"pypy@3.10", "3.13", "3.11"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	re, err := Open(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reloaded = %v", got)
	}
}

func TestRemoveAndMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "h.json")
	s, err := Open(p, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Items()) != 0 {
		t.Fatal("expected empty store")
	}
	_ = s.Add("3.12")
	_ = s.Add("3.11")
	if err := s.Remove("3.12"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("nope"); err != nil {
		t.Fatal(err)
	}
	if got := s.Items(); !reflect.DeepEqual(got, []string{"3.11"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "h.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(p, 5)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if s == nil || len(s.Items()) != 0 {
		t.Fatal("store should still be usable")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	if s.Items() != nil || s.Add("x") != nil {
		t.Fatal("nil store should be a no-op")
	}
}
