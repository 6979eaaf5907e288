package frameset_test

import (
	"testing"

	"github.com/gkwa/wackywolffish/internal/frameset"
)

func TestParseExtractsTimestampAndSequence(t *testing.T) {
	frame, ok := frameset.Parse("/photos/day1/IMG_20250728_115906_AATP1401.jpg")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if frame.Date != "20250728" || frame.Time != "115906" {
		t.Fatalf("unexpected capture components: %q %q", frame.Date, frame.Time)
	}
	if frame.Timestamp() != "20250728_115906" {
		t.Fatalf("unexpected timestamp: %q", frame.Timestamp())
	}
	if frame.Sequence != 1401 {
		t.Fatalf("unexpected sequence: %d", frame.Sequence)
	}
	if frame.Name() != "IMG_20250728_115906_AATP1401.jpg" {
		t.Fatalf("unexpected name: %q", frame.Name())
	}
}

func TestParseStripsLeadingZeros(t *testing.T) {
	frame, ok := frameset.Parse("IMG_20250728_115906_AATP0007.jpg")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if frame.Sequence != 7 {
		t.Fatalf("unexpected sequence: %d", frame.Sequence)
	}
}

func TestParseRejectsNonConformingNames(t *testing.T) {
	rejects := []string{
		"IMG_20250728_115906.jpg",
		"IMG_2025_115906_AATP0001.jpg",
		"snapshot_AATP0001.jpg",
		"IMG_20250728_115906_AATP.jpg",
		"",
	}
	for _, name := range rejects {
		if _, ok := frameset.Parse(name); ok {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
