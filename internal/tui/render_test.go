package tui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate_MultibyteSafe(t *testing.T) {
	got := truncate("日本語のテキストです", 8)
	if got != "日本語のテ..." {
		t.Errorf("truncate = %q, want %q", got, "日本語のテ...")
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
}

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	if got := truncate("héllo", 10); got != "héllo" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
}

func TestAddCursorAt_RuneBoundary(t *testing.T) {
	// é is two bytes; cursor at its end
	got := addCursorAt("é", 2)
	if got != "é█" {
		t.Errorf("addCursorAt = %q, want %q", got, "é█")
	}

	// A mid-rune offset snaps back instead of splitting the rune
	got = addCursorAt("é", 1)
	if !utf8.ValidString(got) {
		t.Errorf("addCursorAt produced invalid UTF-8: %q", got)
	}
	if got != "█é" {
		t.Errorf("addCursorAt = %q, want %q", got, "█é")
	}
}
