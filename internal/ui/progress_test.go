package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/cooldudemcgeexl/crust/internal/driver"
)

func TestApplyEvent(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("parse", []string{"a.src", "b.src"}, events).(*progressModel)

	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.stageLabel != "parsing" {
		t.Errorf("stageLabel = %q", m.stageLabel)
	}

	m.applyEvent(driver.Event{File: "a.src", Stage: driver.StageScan, Status: driver.StatusWorking})
	if m.items[0].status != "scanning" {
		t.Errorf("a.src status = %q", m.items[0].status)
	}
	m.applyEvent(driver.Event{File: "a.src", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.src", Stage: driver.StageParse, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.src", Stage: driver.StageParse, Status: driver.StatusDone})

	if m.items[0].status != "done" || m.items[1].status != "error" {
		t.Errorf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.counts(); !strings.HasPrefix(got, "2/2 files") || !strings.Contains(got, "1 failed") {
		t.Errorf("counts = %q", got)
	}

	view := m.View()
	for _, want := range []string{"parse (parsing)", "a.src", "b.src", "2/2 files"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEmptyModelView(t *testing.T) {
	m := NewProgressModel("parse", nil, make(chan driver.Event))
	if m.View() != "" {
		t.Errorf("empty model renders %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.src", 20, "short.src"},
		{"very/long/path/to/file.src", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"日本語.src", 7, "日本..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := runewidth.StringWidth(got); tt.width > 0 && w > tt.width {
			t.Errorf("truncate(%q, %d) is %d cells wide", tt.in, tt.width, w)
		}
	}
}
