package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		" ON ": uiModeOn,
		"off":  uiModeOff,
	}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil {
			t.Fatalf("readUIMode(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("readUIMode(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestShouldUseTUI(t *testing.T) {
	if shouldUseTUI(uiModeOn, true) {
		t.Error("quiet must disable the progress view")
	}
	if shouldUseTUI(uiModeOff, false) {
		t.Error("off must disable the progress view")
	}
	if !shouldUseTUI(uiModeOn, false) {
		t.Error("on must enable the progress view")
	}
}
