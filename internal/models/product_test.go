package models

import "testing"

func TestMergeImageSlotsReplacesOnlyProvidedSlot(t *testing.T) {
	existing := []ProductImage{
		{Slot: 1, URL: "https://cdn/one.jpg"},
		{Slot: 2, URL: "https://cdn/two.jpg"},
		{Slot: 4, URL: "https://cdn/four.jpg"},
	}
	incoming := []ProductImage{
		{Slot: 3, URL: "https://cdn/three.jpg"},
	}

	merged := MergeImageSlots(existing, incoming)
	if len(merged) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(merged))
	}
	expected := map[int]string{
		1: "https://cdn/one.jpg",
		2: "https://cdn/two.jpg",
		3: "https://cdn/three.jpg",
		4: "https://cdn/four.jpg",
	}
	for i, img := range merged {
		if expected[img.Slot] != img.URL {
			t.Fatalf("slot %d: expected %q, got %q", img.Slot, expected[img.Slot], img.URL)
		}
		if i > 0 && merged[i-1].Slot >= img.Slot {
			t.Fatalf("expected slots sorted, got %v", merged)
		}
	}
}

func TestMergeImageSlotsOverwritesSameSlot(t *testing.T) {
	existing := []ProductImage{{Slot: 2, URL: "https://cdn/old.jpg"}}
	incoming := []ProductImage{{Slot: 2, URL: "https://cdn/new.jpg"}}

	merged := MergeImageSlots(existing, incoming)
	if len(merged) != 1 || merged[0].URL != "https://cdn/new.jpg" {
		t.Fatalf("expected slot 2 replaced, got %v", merged)
	}
}

func TestParseVariantGroups(t *testing.T) {
	groups, err := ParseVariantGroups(`[{"type":"Color","values":["Red","Blue"]},{"type":"Size","values":["M"]}]`)
	if err != nil {
		t.Fatalf("ParseVariantGroups returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Type != "Color" || len(groups[0].Values) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
}

func TestParseVariantGroupsEmptyArray(t *testing.T) {
	groups, err := ParseVariantGroups(`[]`)
	if err != nil {
		t.Fatalf("expected empty array to parse, got %v", err)
	}
	if groups == nil || len(groups) != 0 {
		t.Fatalf("expected non-nil empty slice, got %v", groups)
	}
}

func TestParseVariantGroupsRejectsBadPayloads(t *testing.T) {
	cases := []string{
		`not json`,
		`[{"type":"","values":["Red"]}]`,
		`[{"type":"Color","values":[]}]`,
	}
	for _, raw := range cases {
		if _, err := ParseVariantGroups(raw); err == nil {
			t.Fatalf("expected error for payload %s", raw)
		}
	}
}
