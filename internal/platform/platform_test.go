package platform

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestRegistry(t *testing.T) {
	stub := FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte("<html></html>"), nil
	})
	Register("zz-stub", stub)
	Register("aa-stub", stub)

	f, err := Get("zz-stub")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f.Name() != "func" {
		t.Errorf("Name() = %q", f.Name())
	}
	body, err := f.Fetch(context.Background(), "https://sportvision.rs/odeca/page-0")
	if err != nil || string(body) != "<html></html>" {
		t.Errorf("Fetch = %q, %v", body, err)
	}

	names := List()
	if !slices.IsSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}
	if !slices.Contains(names, "aa-stub") || !slices.Contains(names, "zz-stub") {
		t.Errorf("List() = %v", names)
	}

	if _, err := Get("carrier-pigeon"); err == nil || !strings.Contains(err.Error(), "not registered") {
		t.Errorf("expected unregistered error, got %v", err)
	}
}

func TestProgress(t *testing.T) {
	var got []string
	ctx := WithProgress(context.Background(), func(msg string) { got = append(got, msg) })

	Progressf(ctx, "Page %s/%d: %d products", "odeca", 0, 3)
	Progress(ctx)("done")

	if !slices.Equal(got, []string{"Page odeca/0: 3 products", "done"}) {
		t.Errorf("messages = %v", got)
	}
}

func TestProgress_NoCallback(t *testing.T) {
	// Must not panic without a listener or with a masked one.
	Progressf(context.Background(), "Page %d", 1)
	Progressf(WithProgress(context.Background(), nil), "Page %d", 2)
}
