// Package models contains the wire shapes persisted by the storage ledgers.
// Field names match the on-disk JSON documents and must not change.
package models

// LevelRecord representa el progreso de nivel de un usuario en un servidor
type LevelRecord struct {
	XP       int `json:"xp"`
	Level    int `json:"level"`
	Messages int `json:"messages"`
}

// NewLevelRecord returns the record assigned on first access
func NewLevelRecord() LevelRecord {
	return LevelRecord{XP: 0, Level: 1, Messages: 0}
}

// XPNeeded returns the XP threshold for the next level
func (r LevelRecord) XPNeeded() int {
	return r.Level * 100
}
