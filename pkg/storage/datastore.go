package storage

import (
	"fmt"
	"sync"

	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/PancyStudios/PancyStatsGo/pkg/models"
)

// Document names, also the file names inside the data directory
const (
	DocMentions = "mentions"
	DocLevels   = "levels"
	DocWarnings = "warnings"
	DocEconomy  = "economy"
)

// DataStore bundles the four domain ledgers behind one lifecycle:
// Init loads everything at process start, FlushAll runs at teardown.
type DataStore struct {
	store *Store

	Mentions *Ledger[int]
	Levels   *Ledger[models.LevelRecord]
	Warnings *Ledger[[]models.Warn]
	Economy  *Ledger[models.EconomyAccount]
}

var (
	datastore *DataStore
	dsOnce    sync.Once
)

// Init initializes the global DataStore from the given data directory
func Init(dir string) (*DataStore, error) {
	var err error
	dsOnce.Do(func() {
		datastore, err = New(dir)
	})
	return datastore, err
}

// Get returns the global DataStore instance
func Get() *DataStore {
	return datastore
}

// New loads all four documents from dir and returns a ready DataStore
func New(dir string) (*DataStore, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}

	ds := &DataStore{store: store}

	if ds.Mentions, err = NewLedger[int](DocMentions, store); err != nil {
		return nil, err
	}
	if ds.Levels, err = NewLedger[models.LevelRecord](DocLevels, store); err != nil {
		return nil, err
	}
	if ds.Warnings, err = NewLedger[[]models.Warn](DocWarnings, store); err != nil {
		return nil, err
	}
	if ds.Economy, err = NewLedger[models.EconomyAccount](DocEconomy, store); err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Datos cargados desde '%s'", dir), "Store")
	return ds, nil
}

// Store returns the underlying durable store
func (d *DataStore) Store() *Store {
	return d.store
}

// FlushAll persists every ledger. Used at shutdown so nothing mutated since
// the last per-handler flush is left behind.
func (d *DataStore) FlushAll() error {
	var firstErr error
	for _, flush := range []func() error{
		d.Mentions.Flush,
		d.Levels.Flush,
		d.Warnings.Flush,
		d.Economy.Flush,
	} {
		if err := flush(); err != nil {
			logger.Error(fmt.Sprintf("Error en flush final: %v", err), "Store")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
