package storage

import (
	"errors"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore falló: %v", err)
	}
	return store
}

func TestLedgerGetMissing(t *testing.T) {
	store := newTestStore(t)
	ledger, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}

	if _, ok := ledger.Get("g1", "u1"); ok {
		t.Error("Get devolvió un registro que no existe")
	}
}

func TestLedgerGetOrCreateIsInMemoryOnly(t *testing.T) {
	store := newTestStore(t)
	ledger, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}

	ledger.GetOrCreate("g1", "u1", func() int { return 7 })

	// Sin Flush, una recarga desde el mismo store no ve nada
	reloaded, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("recarga falló: %v", err)
	}
	if _, ok := reloaded.Get("g1", "u1"); ok {
		t.Error("GetOrCreate persistió sin Flush")
	}
}

func TestLedgerFlushAndReload(t *testing.T) {
	store := newTestStore(t)
	ledger, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}

	ledger.Set("g1", "u1", 3)
	ledger.Set("g1", "u2", 5)
	ledger.Set("g2", "u1", 1)

	if err := ledger.Flush(); err != nil {
		t.Fatalf("Flush falló: %v", err)
	}

	reloaded, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("recarga falló: %v", err)
	}

	if v, ok := reloaded.Get("g1", "u2"); !ok || v != 5 {
		t.Errorf("g1/u2 = %d, %v; se esperaba 5, true", v, ok)
	}
	if v, ok := reloaded.Get("g2", "u1"); !ok || v != 1 {
		t.Errorf("g2/u1 = %d, %v; se esperaba 1, true", v, ok)
	}
	if n := reloaded.Count("g1"); n != 2 {
		t.Errorf("Count(g1) = %d, se esperaba 2", n)
	}
}

func TestLedgerUpdateCreatesAndMutates(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("mentions", store)

	got := ledger.Update("g1", "u1", func() int { return 0 }, func(v int) int { return v + 1 })
	if got != 1 {
		t.Errorf("Update devolvió %d, se esperaba 1", got)
	}

	got = ledger.Update("g1", "u1", func() int { return 0 }, func(v int) int { return v + 1 })
	if got != 2 {
		t.Errorf("segundo Update devolvió %d, se esperaba 2", got)
	}
}

func TestLedgerUpdatePairErrorLeavesRecordsUntouched(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("economy", store)

	ledger.Set("g1", "a", 100)
	ledger.Set("g1", "b", 50)

	boom := errors.New("boom")
	_, _, err := ledger.UpdatePair("g1", "a", "b", func() int { return 0 },
		func(a, b int) (int, int, error) {
			return a - 500, b + 500, boom
		})
	if !errors.Is(err, boom) {
		t.Fatalf("UpdatePair devolvió %v, se esperaba boom", err)
	}

	if v, _ := ledger.Get("g1", "a"); v != 100 {
		t.Errorf("a = %d tras error, se esperaba 100", v)
	}
	if v, _ := ledger.Get("g1", "b"); v != 50 {
		t.Errorf("b = %d tras error, se esperaba 50", v)
	}
}

func TestLedgerUpdatePairAppliesBothSides(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("economy", store)

	a, b, err := ledger.UpdatePair("g1", "a", "b", func() int { return 100 },
		func(a, b int) (int, int, error) {
			return a - 30, b + 30, nil
		})
	if err != nil {
		t.Fatalf("UpdatePair falló: %v", err)
	}
	if a != 70 || b != 130 {
		t.Errorf("UpdatePair devolvió %d, %d; se esperaba 70, 130", a, b)
	}
}

func TestLedgerDelete(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("warnings", store)

	ledger.Set("g1", "u1", 1)

	if !ledger.Delete("g1", "u1") {
		t.Error("Delete devolvió false para un registro existente")
	}
	if ledger.Delete("g1", "u1") {
		t.Error("Delete devolvió true para un registro ya eliminado")
	}
	if _, ok := ledger.Get("g1", "u1"); ok {
		t.Error("el registro sigue presente tras Delete")
	}
	if n := ledger.Count("g1"); n != 0 {
		t.Errorf("Count = %d tras Delete, se esperaba 0", n)
	}
}

func TestLedgerTopNDescendingWithLimit(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("mentions", store)

	ledger.Set("g1", "low", 1)
	ledger.Set("g1", "high", 9)
	ledger.Set("g1", "mid", 5)

	top := ledger.TopN("g1", 2, func(v int) int { return v })
	if len(top) != 2 {
		t.Fatalf("TopN devolvió %d entradas, se esperaban 2", len(top))
	}
	if top[0].SubjectID != "high" || top[1].SubjectID != "mid" {
		t.Errorf("orden incorrecto: %s, %s", top[0].SubjectID, top[1].SubjectID)
	}
}

func TestLedgerTopNTiesKeepInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("mentions", store)

	ledger.Set("g1", "first", 4)
	ledger.Set("g1", "second", 4)
	ledger.Set("g1", "third", 4)

	top := ledger.TopN("g1", 0, func(v int) int { return v })
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if top[i].SubjectID != id {
			t.Errorf("posición %d: %s, se esperaba %s", i, top[i].SubjectID, id)
		}
	}
}

func TestLedgerTieOrderSurvivesReload(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("mentions", store)

	ledger.Set("g1", "first", 4)
	ledger.Set("g1", "second", 4)

	if err := ledger.Flush(); err != nil {
		t.Fatalf("Flush falló: %v", err)
	}

	reloaded, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("recarga falló: %v", err)
	}

	top := reloaded.TopN("g1", 0, func(v int) int { return v })
	if len(top) != 2 {
		t.Fatalf("TopN devolvió %d entradas, se esperaban 2", len(top))
	}
	if top[0].SubjectID != "first" || top[1].SubjectID != "second" {
		t.Errorf("el empate cambió de orden tras recargar: %s, %s",
			top[0].SubjectID, top[1].SubjectID)
	}
}

func TestLedgerCorruptDocumentFailsLoad(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("mentions", []byte(`{"g1": {`)); err != nil {
		t.Fatalf("Save falló: %v", err)
	}

	if _, err := NewLedger[int]("mentions", store); err == nil {
		t.Error("NewLedger aceptó un documento corrupto")
	}
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	store := newTestStore(t)
	ledger, _ := NewLedger[int]("mentions", store)

	ledger.Set("g1", "u1", 1)

	snap := ledger.Snapshot("g1")
	snap["u1"] = 99

	if v, _ := ledger.Get("g1", "u1"); v != 1 {
		t.Errorf("mutar el snapshot afectó al ledger: %d", v)
	}
}

func TestLedgerFlushSerializesOverlappingFlushes(t *testing.T) {
	store := newTestStore(t)
	ledger, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}

	// Un flusher de fondo compite con el escritor por el mismo documento
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				ledger.Flush()
			}
		}
	}()

	const final = 200
	for i := 1; i <= final; i++ {
		ledger.Set("g1", "u1", i)
		if err := ledger.Flush(); err != nil {
			t.Fatalf("Flush falló: %v", err)
		}
	}
	close(done)
	wg.Wait()

	// El disco debe quedar con el último valor: ningún flush concurrente
	// puede pisar un snapshot más nuevo con uno más viejo
	reloaded, err := NewLedger[int]("mentions", store)
	if err != nil {
		t.Fatalf("recarga falló: %v", err)
	}
	if v, _ := reloaded.Get("g1", "u1"); v != final {
		t.Errorf("persistió un snapshot viejo: %d, se esperaba %d", v, final)
	}
}
