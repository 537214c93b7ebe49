package models

// Warn representa una advertencia individual
// Timestamp se guarda como ISO-8601 (time.RFC3339) para mantener compatibilidad
// con los archivos ya existentes. ID es opcional: entradas antiguas sin campo
// id siguen cargando sin problema.
type Warn struct {
	Reason    string `json:"reason"`
	Moderator string `json:"moderator"`
	Timestamp string `json:"timestamp"`
	ID        string `json:"id,omitempty"`
}
