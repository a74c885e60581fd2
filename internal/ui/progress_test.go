package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"haags/internal/driver"
)

func newTestModel(final driver.Stage, files ...string) *progressModel {
	return NewProgressModel("translating", files, final, nil).(*progressModel)
}

func TestApplyEventTracksFiles(t *testing.T) {
	m := newTestModel(driver.StageWrite, "a.txt", "b.txt")

	m.applyEvent(driver.Event{File: "a.txt", Stage: driver.StageTranslate, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "translating" {
		t.Fatalf("status = %q, want translating", got)
	}
	m.applyEvent(driver.Event{File: "a.txt", Stage: driver.StageTranslate, Status: driver.StatusDone, Elapsed: time.Millisecond})
	if got := m.items[0].status; got != "translated" {
		t.Fatalf("status = %q, want translated before the write stage", got)
	}
	if m.finished() != 0 {
		t.Fatal("file is not finished until written")
	}

	m.applyEvent(driver.Event{File: "a.txt", Stage: driver.StageWrite, Status: driver.StatusDone, Elapsed: time.Millisecond})
	if got := m.items[0].status; got != "done" {
		t.Fatalf("status = %q, want done", got)
	}
	if m.items[0].elapsed != 2*time.Millisecond {
		t.Fatalf("elapsed = %v", m.items[0].elapsed)
	}

	m.applyEvent(driver.Event{File: "b.txt", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("boom")})
	// ошибка окончательна
	m.applyEvent(driver.Event{File: "b.txt", Stage: driver.StageTranslate, Status: driver.StatusWorking})
	if got := m.items[1].status; got != "error" {
		t.Fatalf("status = %q, want error", got)
	}
	if m.finished() != 2 || m.percent() != 1 {
		t.Fatalf("finished=%d percent=%v", m.finished(), m.percent())
	}

	// неизвестные файлы игнорируются
	if cmd := m.applyEvent(driver.Event{File: "c.txt", Stage: driver.StageLoad, Status: driver.StatusWorking}); cmd != nil {
		t.Fatal("unexpected command for an unknown file")
	}
}

func TestFinalStageTranslate(t *testing.T) {
	m := newTestModel(driver.StageTranslate, "a.txt")
	m.applyEvent(driver.Event{File: "a.txt", Stage: driver.StageTranslate, Status: driver.StatusDone})
	if m.items[0].status != "done" || m.finished() != 1 {
		t.Fatalf("status=%q finished=%d", m.items[0].status, m.finished())
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel(driver.StageTranslate, "brief.txt", "notities.md")
	m.applyEvent(driver.Event{Stage: driver.StageTranslate, Status: driver.StatusWorking})
	view := m.View()
	for _, want := range []string{"brief.txt", "notities.md", "queued", "0/2", "(translating)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"brief.txt", 20, "brief.txt"},
		{"een/heel/lang/pad/naar/brief.txt", 10, "een/hee..."},
		{"mèn-huis.txt", 3, "mèn"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
