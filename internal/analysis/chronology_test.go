package analysis

import (
	"testing"
	"time"

	"shuttercheck/internal/record"
)

func datedPhoto(name string, ts time.Time, order int) record.Photo {
	return record.Photo{Filename: name, CaptureTime: ts, ScanOrder: order}
}

func TestOrderChronologically(t *testing.T) {
	base := time.Date(2021, time.May, 1, 12, 0, 0, 0, time.UTC)
	photos := []record.Photo{
		{Filename: "undated-a.jpg", ScanOrder: 0},
		datedPhoto("later.jpg", base.Add(time.Hour), 1),
		datedPhoto("earlier.jpg", base, 2),
		{Filename: "undated-b.jpg", ScanOrder: 3},
	}

	ordered := OrderChronologically(photos)

	want := []string{"earlier.jpg", "later.jpg", "undated-a.jpg", "undated-b.jpg"}
	for i, name := range want {
		if ordered[i].Filename != name {
			t.Fatalf("position %d: got %q, want %q (full order %v)", i, ordered[i].Filename, name, names(ordered))
		}
	}

	// Input slice must stay untouched.
	if photos[0].Filename != "undated-a.jpg" {
		t.Fatal("input slice was reordered")
	}
}

func TestOrderChronologicallyStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2021, time.May, 1, 12, 0, 0, 0, time.UTC)
	photos := []record.Photo{
		datedPhoto("first.jpg", ts, 0),
		datedPhoto("second.jpg", ts, 1),
		datedPhoto("third.jpg", ts, 2),
	}
	ordered := OrderChronologically(photos)
	for i, name := range []string{"first.jpg", "second.jpg", "third.jpg"} {
		if ordered[i].Filename != name {
			t.Fatalf("stability broken: %v", names(ordered))
		}
	}
}

func TestFilterByModel(t *testing.T) {
	photos := []record.Photo{
		{Filename: "a.jpg", Model: "NIKON Z 6"},
		{Filename: "b.jpg", Model: "nikon z 6"},
		{Filename: "c.jpg", Model: "NIKON Z 7"},
		{Filename: "d.jpg", Model: record.UnknownText},
	}

	kept, removed := FilterByModel(photos, "NIKON Z 6", true)
	if len(kept) != 2 || removed != 2 {
		t.Fatalf("expected 2 kept / 2 removed, got %d/%d", len(kept), removed)
	}
	if kept[0].Filename != "a.jpg" || kept[1].Filename != "b.jpg" {
		t.Fatalf("unexpected survivors: %v", names(kept))
	}

	kept, removed = FilterByModel(photos, "NIKON Z 6", false)
	if len(kept) != 4 || removed != 0 {
		t.Fatal("filter must be a no-op when not required")
	}
}

func names(photos []record.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.Filename
	}
	return out
}
