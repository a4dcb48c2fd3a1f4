package engine

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const storeCSV = `Country/Region,Aircraft,Operator,Location,Fatalities (air),Ground,Aboard
US,B737,Pan Am,New York,2,0,10
`

func TestStoreLoadOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aircrashes.csv")
	if err := os.WriteFile(path, []byte(storeCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if _, ok := s.Dataset(); ok {
		t.Fatal("dataset must not be available before Load")
	}

	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	records, ok := s.Dataset()
	if !ok || len(records) != 1 {
		t.Fatalf("expected 1 record after load, got %d (ok=%v)", len(records), ok)
	}

	// Second Load is a no-op, not a reload.
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if s.Generation() != 1 {
		t.Errorf("generation after repeated Load: expected 1, got %d", s.Generation())
	}
}

func TestStoreConcurrentLoadInitializesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aircrashes.csv")
	if err := os.WriteFile(path, []byte(storeCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Load(); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if s.Generation() != 1 {
		t.Errorf("concurrent Loads must read the file once, generation %d", s.Generation())
	}
}

func TestStoreFailedLoadKeepsError(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.csv"))
	if err := s.Load(); err == nil {
		t.Fatal("expected load error")
	}
	if s.LoadErr() == nil {
		t.Error("expected LoadErr to report the failure")
	}
	if _, ok := s.Dataset(); ok {
		t.Error("dataset must stay unavailable after a failed initial load")
	}
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aircrashes.csv")
	if err := os.WriteFile(path, []byte(storeCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	extended := storeCSV + "FR,A320,Air France,Paris,0,0,8\n"
	if err := os.WriteFile(path, []byte(extended), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.reload(); err != nil {
		t.Fatal(err)
	}

	records, _ := s.Dataset()
	if len(records) != 2 {
		t.Fatalf("expected 2 records after reload, got %d", len(records))
	}
	if s.Generation() != 2 {
		t.Errorf("generation: expected 2, got %d", s.Generation())
	}

	// A broken rewrite keeps the previous snapshot.
	if err := os.WriteFile(path, []byte("Date,Aboard\nx,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.reload(); err == nil {
		t.Fatal("expected reload error for missing required columns")
	}
	records, ok := s.Dataset()
	if !ok || len(records) != 2 {
		t.Errorf("previous snapshot must survive a failed reload, got %d (ok=%v)", len(records), ok)
	}
}
