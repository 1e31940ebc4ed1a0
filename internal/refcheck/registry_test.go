package refcheck

import (
	"context"
	"testing"
)

func labelled(label string) Finder {
	return func(ctx context.Context, id string) ([]Reference, error) {
		return []Reference{{Type: "Quote", Label: label}}, nil
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry(map[string][]Finder{
		"Customer": {labelled("first"), labelled("second"), labelled("third")},
	})

	finders := reg.FindersFor("Customer")
	if len(finders) != 3 {
		t.Fatalf("expected 3 finders, got %d", len(finders))
	}
	want := []string{"first", "second", "third"}
	for i, find := range finders {
		refs, err := find(context.Background(), "c1")
		if err != nil {
			t.Fatalf("finder %d: %v", i, err)
		}
		if refs[0].Label != want[i] {
			t.Fatalf("finder %d: expected %q, got %q", i, want[i], refs[0].Label)
		}
	}
}

func TestRegistryUnknownEntity(t *testing.T) {
	reg := NewRegistry(map[string][]Finder{})
	if finders := reg.FindersFor("Widget"); len(finders) != 0 {
		t.Fatalf("expected no finders, got %d", len(finders))
	}
}

func TestRegistryCopiesFinderSlices(t *testing.T) {
	list := []Finder{labelled("kept")}
	reg := NewRegistry(map[string][]Finder{"Customer": list})

	list[0] = labelled("swapped")

	refs, err := reg.FindersFor("Customer")[0](context.Background(), "c1")
	if err != nil {
		t.Fatalf("finder: %v", err)
	}
	if refs[0].Label != "kept" {
		t.Fatalf("registry shared the caller's slice: got %q", refs[0].Label)
	}
}
