package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata Manager
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: "test_starcatch_records",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestRecordManager_NilGdata(t *testing.T) {
	rm, err := NewRecordManager(nil)
	if err != nil {
		t.Fatalf("NewRecordManager(nil) error: %v", err)
	}

	if !rm.Submit(30) {
		t.Error("first submit should be a new best")
	}
	if err := rm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not error: %v", err)
	}

	rec := rm.Records()
	if rec.BestScore != 30 || rec.RunsPlayed != 1 || rec.LastScore != 30 {
		t.Errorf("records = %+v", rec)
	}
}

func TestRecordManager_Submit(t *testing.T) {
	rm, _ := NewRecordManager(nil)

	tests := []struct {
		score    int
		wantBest bool
		best     int
	}{
		{score: 20, wantBest: true, best: 20},
		{score: 10, wantBest: false, best: 20},
		{score: 20, wantBest: false, best: 20},
		{score: 41, wantBest: true, best: 41},
	}

	for i, tt := range tests {
		if got := rm.Submit(tt.score); got != tt.wantBest {
			t.Errorf("submit #%d (%d): newBest = %v, want %v", i, tt.score, got, tt.wantBest)
		}
		if rm.Records().BestScore != tt.best {
			t.Errorf("submit #%d: best = %d, want %d", i, rm.Records().BestScore, tt.best)
		}
	}
	if rm.Records().RunsPlayed != len(tests) {
		t.Errorf("RunsPlayed = %d, want %d", rm.Records().RunsPlayed, len(tests))
	}
}

func TestRecordManager_Persistence(t *testing.T) {
	manager := openTestGdata(t)

	rm, err := NewRecordManager(manager)
	if err != nil {
		t.Fatalf("NewRecordManager() error: %v", err)
	}
	rm.Submit(50)
	rm.Submit(20)

	reloaded, err := NewRecordManager(manager)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}

	want := RunRecords{BestScore: 50, LastScore: 20, RunsPlayed: 2}
	if got := reloaded.Records(); got != want {
		t.Errorf("reloaded records = %+v, want %+v", got, want)
	}
}

func TestRecordManager_CorruptDataStartsFresh(t *testing.T) {
	manager := openTestGdata(t)
	if err := manager.SaveObjectProp(recordsObject, recordsProperty, []byte("bestScore: [not-an-int")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	rm, err := NewRecordManager(manager)
	if err != nil {
		t.Fatalf("corrupt data should not fail creation: %v", err)
	}
	if rm.Records() != (RunRecords{}) {
		t.Errorf("records = %+v, want zero value", rm.Records())
	}
}
