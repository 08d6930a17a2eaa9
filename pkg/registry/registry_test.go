package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// glyphSet is a simple type for testing
type glyphSet struct {
	Name   string
	Glyphs []string
}

func TestNew(t *testing.T) {
	reg := New[glyphSet]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
	if reg.Frozen() {
		t.Error("New registry should not be frozen")
	}
}

func TestRegister(t *testing.T) {
	reg := New[glyphSet]()

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("ascii", glyphSet{Name: "ascii", Glyphs: []string{" ", "@"}})
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", glyphSet{})
		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("ascii", glyphSet{})
		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestFreeze(t *testing.T) {
	reg := New[glyphSet]()
	MustRegister(reg, "shaded", glyphSet{Name: "shaded"})
	reg.Freeze()

	if !reg.Frozen() {
		t.Fatal("Frozen() = false after Freeze()")
	}

	err := reg.Register("dots", glyphSet{Name: "dots"})
	if !errors.IsErrorCode(err, errors.ErrInternal) {
		t.Errorf("Register() after Freeze() should return ErrInternal, got %v", err)
	}

	// lookups keep working
	if _, err := reg.Get("shaded"); err != nil {
		t.Errorf("Get() after Freeze() error = %v", err)
	}
}

func TestGet(t *testing.T) {
	reg := New[glyphSet]()
	item := glyphSet{Name: "moon", Glyphs: []string{"🌑", "🌕"}}
	MustRegister(reg, "moon", item)

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("moon")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}
		if got.Name != item.Name || len(got.Glyphs) != 2 {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("Moon")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() should be case-sensitive and return ErrNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"white", "ascii", "moon"} {
		MustRegister(reg, name, i)
	}

	got := reg.List()
	want := []string{"ascii", "moon", "white"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHas(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "present", 1)

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"existing", "present", true},
		{"missing", "absent", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Has(tt.key); got != tt.want {
				t.Errorf("Has(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConcurrentReads(t *testing.T) {
	reg := New[int]()
	const items = 50
	for i := 0; i < items; i++ {
		MustRegister(reg, fmt.Sprintf("item%d", i), i)
	}
	reg.Freeze()

	const goroutines = 10
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < items; i++ {
				got, err := reg.Get(fmt.Sprintf("item%d", i))
				if err != nil || got != i {
					t.Errorf("concurrent Get(item%d) = %d, %v", i, got, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "item1", 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()
	MustRegister(reg, "item1", 2)
}

func TestMustGet(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "item1", 7)

	if got := MustGet(reg, "item1"); got != 7 {
		t.Errorf("MustGet() = %d, want 7", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGet() should panic when item is missing")
		}
	}()
	MustGet(reg, "missing")
}
