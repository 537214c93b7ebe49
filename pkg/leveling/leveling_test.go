package leveling

import (
	"testing"

	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Ledger[models.LevelRecord]) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore falló: %v", err)
	}
	ledger, err := storage.NewLedger[models.LevelRecord]("levels", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}
	return NewService(ledger), ledger
}

func TestRecordMessageFirstMessage(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.RecordMessage("g1", "u1")

	if result.Gained < 10 || result.Gained > 25 {
		t.Errorf("ganancia de XP fuera de rango: %d", result.Gained)
	}
	if result.Record.Messages != 1 {
		t.Errorf("Messages = %d, se esperaba 1", result.Record.Messages)
	}
	if result.Record.Level != 1 {
		t.Errorf("Level = %d, se esperaba 1", result.Record.Level)
	}
	if result.LeveledUp {
		t.Error("un solo mensaje no puede subir de nivel desde cero")
	}
	if result.Record.XP != result.Gained {
		t.Errorf("XP = %d, se esperaba la ganancia %d", result.Record.XP, result.Gained)
	}
}

func TestRecordMessagePromotesExactlyOnce(t *testing.T) {
	svc, ledger := newTestService(t)

	// Con 90 XP en nivel 1 cualquier ganancia (mínimo 10) cruza el umbral de 100
	ledger.Set("g1", "u1", models.LevelRecord{XP: 90, Level: 1, Messages: 5})

	result := svc.RecordMessage("g1", "u1")

	if !result.LeveledUp {
		t.Fatal("se esperaba subida de nivel")
	}
	if result.Record.Level != 2 {
		t.Errorf("Level = %d, se esperaba 2", result.Record.Level)
	}
	if result.Record.XP != 0 {
		t.Errorf("XP = %d tras la promoción, se esperaba 0", result.Record.XP)
	}
	if result.Record.Messages != 6 {
		t.Errorf("Messages = %d, se esperaba 6", result.Record.Messages)
	}
}

func TestRecordMessageNeverSkipsLevels(t *testing.T) {
	svc, ledger := newTestService(t)

	// XP muy por encima del umbral: la promoción sigue siendo de un solo nivel
	ledger.Set("g1", "u1", models.LevelRecord{XP: 99, Level: 1, Messages: 1})

	result := svc.RecordMessage("g1", "u1")

	if result.Record.Level != 2 {
		t.Errorf("Level = %d, se esperaba exactamente 2", result.Record.Level)
	}
	if result.Record.XP != 0 {
		t.Errorf("XP = %d, se esperaba 0", result.Record.XP)
	}
}

func TestReachLevelTwoEndToEnd(t *testing.T) {
	svc, _ := newTestService(t)

	var leveled bool
	for i := 0; i < 20 && !leveled; i++ {
		result := svc.RecordMessage("g1", "u1")
		if result.LeveledUp {
			leveled = true
			if result.Record.Level != 2 {
				t.Errorf("Level = %d en la primera promoción, se esperaba 2", result.Record.Level)
			}
			if result.Record.XP != 0 {
				t.Errorf("XP = %d en la promoción, se esperaba 0", result.Record.XP)
			}
		}
	}

	// 20 mensajes de al menos 10 XP cada uno superan de sobra el umbral de 100
	if !leveled {
		t.Error("el usuario nunca alcanzó el nivel 2")
	}
}

func TestTopOrdersByLevelThenXP(t *testing.T) {
	svc, ledger := newTestService(t)

	ledger.Set("g1", "lowLevel", models.LevelRecord{XP: 99, Level: 1, Messages: 10})
	ledger.Set("g1", "highLevel", models.LevelRecord{XP: 0, Level: 3, Messages: 50})
	ledger.Set("g1", "midLevel", models.LevelRecord{XP: 40, Level: 2, Messages: 30})
	ledger.Set("g1", "midLevelMoreXP", models.LevelRecord{XP: 80, Level: 2, Messages: 30})

	top := svc.Top("g1", 0)

	want := []string{"highLevel", "midLevelMoreXP", "midLevel", "lowLevel"}
	if len(top) != len(want) {
		t.Fatalf("Top devolvió %d entradas, se esperaban %d", len(top), len(want))
	}
	for i, id := range want {
		if top[i].SubjectID != id {
			t.Errorf("posición %d: %s, se esperaba %s", i, top[i].SubjectID, id)
		}
	}
}

func TestXPNeededGrowsWithLevel(t *testing.T) {
	rec := models.LevelRecord{Level: 1}
	if rec.XPNeeded() != 100 {
		t.Errorf("XPNeeded en nivel 1 = %d, se esperaba 100", rec.XPNeeded())
	}
	rec.Level = 7
	if rec.XPNeeded() != 700 {
		t.Errorf("XPNeeded en nivel 7 = %d, se esperaba 700", rec.XPNeeded())
	}
}
