package storage

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
)

// Ledger is a guild-scoped key-value table: guild → subject → record.
// It is the single shared pattern behind the four data domains of the bot
// (mention counters, level records, warning lists, economy accounts).
//
// All mutations run under one mutex, so concurrent command handlers touching
// the same ledger are serialized and a check-then-act sequence inside Update
// or UpdatePair can never interleave with another writer.
//
// The ledger keeps per-guild insertion order so leaderboard ties resolve the
// same way run after run, including across restarts: documents are written
// in insertion order and the order is recovered from the file on load.
type Ledger[T any] struct {
	name  string
	store *Store

	mu         sync.Mutex
	guilds     map[string]map[string]T
	guildOrder []string
	order      map[string][]string
}

// Entry is one ranked row returned by TopN
type Entry[T any] struct {
	SubjectID string
	Record    T
}

// NewLedger loads the named document from the store, or starts empty on
// first run. A corrupt document is a fatal load error: the ledger refuses
// to start over it rather than silently dropping data.
func NewLedger[T any](name string, store *Store) (*Ledger[T], error) {
	l := &Ledger[T]{
		name:   name,
		store:  store,
		guilds: make(map[string]map[string]T),
		order:  make(map[string][]string),
	}

	raw, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return l, nil
	}

	if err := json.Unmarshal(raw, &l.guilds); err != nil {
		return nil, fmt.Errorf("documento '%s' corrupto: %w", name, err)
	}

	guildOrder, order, err := scanKeyOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("documento '%s' corrupto: %w", name, err)
	}
	l.guildOrder = guildOrder
	l.order = order

	return l, nil
}

// Name returns the document name backing this ledger
func (l *Ledger[T]) Name() string {
	return l.name
}

// Get returns the record for (guild, subject) without creating it
func (l *Ledger[T]) Get(guildID, subjectID string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	subjects, ok := l.guilds[guildID]
	if !ok {
		return zero, false
	}
	rec, ok := subjects[subjectID]
	if !ok {
		return zero, false
	}
	return rec, true
}

// GetOrCreate returns the existing record, or inserts the default and
// returns it. The insertion is in-memory only: nothing hits disk until
// the caller decides to Flush.
func (l *Ledger[T]) GetOrCreate(guildID, subjectID string, def func() T) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.getOrCreateLocked(guildID, subjectID, def)
}

func (l *Ledger[T]) getOrCreateLocked(guildID, subjectID string, def func() T) T {
	subjects, ok := l.guilds[guildID]
	if !ok {
		subjects = make(map[string]T)
		l.guilds[guildID] = subjects
		l.guildOrder = append(l.guildOrder, guildID)
	}
	rec, ok := subjects[subjectID]
	if !ok {
		rec = def()
		subjects[subjectID] = rec
		l.order[guildID] = append(l.order[guildID], subjectID)
	}
	return rec
}

// Set stores a record, creating the guild and subject slots as needed
func (l *Ledger[T]) Set(guildID, subjectID string, value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.getOrCreateLocked(guildID, subjectID, func() T { return value })
	l.guilds[guildID][subjectID] = value
}

// Update applies a mutation to one record under the ledger lock and returns
// the new value. The record is created from def first if absent.
func (l *Ledger[T]) Update(guildID, subjectID string, def func() T, fn func(T) T) T {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.getOrCreateLocked(guildID, subjectID, def)
	rec = fn(rec)
	l.guilds[guildID][subjectID] = rec
	return rec
}

// UpdatePair applies one mutation to two records of the same guild in a
// single locked section. Two-party transfers go through here so the
// sufficiency check and both balance movements are atomic with respect to
// every other mutation of the ledger. fn returning an error leaves both
// records untouched.
func (l *Ledger[T]) UpdatePair(guildID, aID, bID string, def func() T, fn func(a, b T) (T, T, error)) (T, T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.getOrCreateLocked(guildID, aID, def)
	b := l.getOrCreateLocked(guildID, bID, def)

	na, nb, err := fn(a, b)
	if err != nil {
		return a, b, err
	}
	l.guilds[guildID][aID] = na
	l.guilds[guildID][bID] = nb
	return na, nb, nil
}

// Delete removes a subject's record entirely. Returns false if it did not exist.
func (l *Ledger[T]) Delete(guildID, subjectID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	subjects, ok := l.guilds[guildID]
	if !ok {
		return false
	}
	if _, ok := subjects[subjectID]; !ok {
		return false
	}
	delete(subjects, subjectID)

	ids := l.order[guildID]
	for i, id := range ids {
		if id == subjectID {
			l.order[guildID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// Count returns how many subjects a guild currently has
func (l *Ledger[T]) Count(guildID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.guilds[guildID])
}

// TopN returns the n subjects of a guild with the largest key, descending.
// The sort is stable over insertion order, so ties keep the order subjects
// first appeared in the ledger.
func (l *Ledger[T]) TopN(guildID string, n int, key func(T) int) []Entry[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	subjects, ok := l.guilds[guildID]
	if !ok || len(subjects) == 0 {
		return nil
	}

	entries := make([]Entry[T], 0, len(subjects))
	for _, id := range l.order[guildID] {
		if rec, ok := subjects[id]; ok {
			entries = append(entries, Entry[T]{SubjectID: id, Record: rec})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return key(entries[i].Record) > key(entries[j].Record)
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Snapshot returns a copy of one guild's records, keyed by subject
func (l *Ledger[T]) Snapshot(guildID string) map[string]T {
	l.mu.Lock()
	defer l.mu.Unlock()

	subjects, ok := l.guilds[guildID]
	if !ok {
		return nil
	}
	out := make(map[string]T, len(subjects))
	for id, rec := range subjects {
		out[id] = rec
	}
	return out
}

// Flush writes the whole in-memory document to the store. Handlers call this
// once per invocation, after all their mutations are applied. The mutex is
// held through the save so overlapping flushes reach the disk in the same
// order they were serialized; a newer snapshot can never be overwritten by
// an older one.
func (l *Ledger[T]) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.marshalLocked()
	if err != nil {
		return fmt.Errorf("error serializando documento '%s': %w", l.name, err)
	}
	return l.store.Save(l.name, data)
}

// marshalLocked serializes the document with guilds and subjects in
// insertion order. A plain map marshal would sort keys and lose the order
// that leaderboard tie-breaking depends on.
func (l *Ledger[T]) marshalLocked() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, guildID := range l.guildOrder {
		subjects, ok := l.guilds[guildID]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		gk, err := json.Marshal(guildID)
		if err != nil {
			return nil, err
		}
		buf.Write(gk)
		buf.WriteByte(':')
		buf.WriteByte('{')

		innerFirst := true
		for _, subjectID := range l.order[guildID] {
			rec, ok := subjects[subjectID]
			if !ok {
				continue
			}
			if !innerFirst {
				buf.WriteByte(',')
			}
			innerFirst = false

			sk, err := json.Marshal(subjectID)
			if err != nil {
				return nil, err
			}
			buf.Write(sk)
			buf.WriteByte(':')

			val, err := json.Marshal(rec)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// scanKeyOrder walks the raw document tokens and records the order guild and
// subject keys appear in the file
func scanKeyOrder(raw []byte) ([]string, map[string][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("se esperaba un objeto JSON en la raíz")
	}

	var guildOrder []string
	order := make(map[string][]string)

	for dec.More() {
		gtok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		guildID, ok := gtok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("clave de guild inválida: %v", gtok)
		}
		guildOrder = append(guildOrder, guildID)

		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, nil, fmt.Errorf("se esperaba un objeto para la guild '%s'", guildID)
		}

		for dec.More() {
			stok, err := dec.Token()
			if err != nil {
				return nil, nil, err
			}
			subjectID, ok := stok.(string)
			if !ok {
				return nil, nil, fmt.Errorf("clave de sujeto inválida en guild '%s'", guildID)
			}
			order[guildID] = append(order[guildID], subjectID)

			if err := skipValue(dec); err != nil {
				return nil, nil, err
			}
		}
		if _, err := dec.Token(); err != nil { // closing brace of the guild
			return nil, nil, err
		}
	}

	return guildOrder, order, nil
}

// skipValue consumes one full JSON value from the decoder
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
