package header

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTagsOrder(t *testing.T) {
	t.Parallel()

	var tags *Tags
	tags = tags.set(TagMethod, []byte("INVITE"))
	tags = tags.set(TagNumber, []byte("42"))
	tags = tags.set(TagHost, []byte("atlanta.com"))

	var kinds []TagKind
	for k := range tags.All() {
		kinds = append(kinds, k)
	}
	want := []TagKind{TagNumber, TagMethod, TagHost}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestTagsSetReplaces(t *testing.T) {
	t.Parallel()

	var tags *Tags
	tags = tags.set(TagID, []byte("a"))
	tags = tags.set(TagID, []byte("b"))

	if tags.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tags.Len())
	}
	val, ok := tags.Get(TagID)
	if !ok || string(val) != "b" {
		t.Errorf("Get(TagID) = %q, %v, want %q, true", val, ok, "b")
	}
}

func TestTagsNil(t *testing.T) {
	t.Parallel()

	var tags *Tags
	if tags.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", tags.Len())
	}
	if _, ok := tags.Get(TagID); ok {
		t.Error("nil Get() found, want absent")
	}
	if tags.Has(TagID) {
		t.Error("nil Has() = true, want false")
	}
	for range tags.All() {
		t.Error("nil All() yielded an entry")
	}
}

func TestTagsEqual(t *testing.T) {
	t.Parallel()

	var a, b *Tags
	if !a.Equal(b) {
		t.Error("nil tags are not equal")
	}

	a = a.set(TagID, []byte("x"))
	if a.Equal(b) || b.Equal(a) {
		t.Error("tags of different size compare equal")
	}

	b = b.set(TagID, []byte("x"))
	if !a.Equal(b) {
		t.Error("equal tags compare unequal")
	}

	b = b.set(TagID, []byte("y"))
	if a.Equal(b) {
		t.Error("tags with different spans compare equal")
	}
}
