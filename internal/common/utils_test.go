package common

import "testing"

func TestHasAny(t *testing.T) {
	if !HasAny("text/html, image/SVG+xml;q=0.9", "image/svg+xml") {
		t.Fatal("expected case-insensitive match")
	}
	if HasAny("text/html", "image/png", "image/svg+xml") {
		t.Fatal("unexpected match")
	}
	if HasAny("anything") {
		t.Fatal("no substrings should never match")
	}
}
