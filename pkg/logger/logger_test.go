package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func newTestLogger(t *testing.T, errorWebhook, logsWebhook string) *Logger {
	t.Helper()
	t.Chdir(t.TempDir())
	l := NewLogger(errorWebhook, logsWebhook)
	t.Cleanup(l.Close)
	return l
}

func TestLoggerWritesBothFiles(t *testing.T) {
	l := newTestLogger(t, "", "")

	l.Info("mensaje informativo", "TEST")
	l.Error("mensaje de error", "TEST")

	combined, err := os.ReadFile(filepath.Join("logs", "combined.log"))
	if err != nil {
		t.Fatalf("no se creó combined.log: %v", err)
	}
	if !strings.Contains(string(combined), "mensaje informativo") ||
		!strings.Contains(string(combined), "mensaje de error") {
		t.Error("combined.log no contiene ambos mensajes")
	}

	errorLog, err := os.ReadFile(filepath.Join("logs", "error.log"))
	if err != nil {
		t.Fatalf("no se creó error.log: %v", err)
	}
	if strings.Contains(string(errorLog), "mensaje informativo") {
		t.Error("error.log contiene mensajes que no son de error")
	}
	if !strings.Contains(string(errorLog), "mensaje de error") {
		t.Error("error.log no contiene el mensaje de error")
	}
}

func TestLoggerLevelsDoNotPanic(t *testing.T) {
	l := newTestLogger(t, "", "")

	l.Critical("crítico", "TEST")
	l.Error("error", "TEST")
	l.Warn("aviso", "TEST")
	l.Success("éxito", "TEST")
	l.Info("info", "TEST")
	l.Debug("depuración", "TEST")
	l.System("sistema", "TEST")
}

func TestLogLevelMapping(t *testing.T) {
	tests := []struct {
		level LogLevel
		name  string
		color int
	}{
		{LevelCritical, "CRITICAL", 0xFF0000},
		{LevelError, "ERROR", 0xFF0000},
		{LevelWarn, "WARN", 0xFFFF00},
		{LevelSuccess, "SUCCESS", 0x00FF00},
		{LevelInfo, "INFO", 0x0000FF},
		{LevelDebug, "DEBUG", 0x800080},
		{LevelSystem, "SYSTEM", 0x808080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.name {
				t.Errorf("String() = %q, se esperaba %q", got, tt.name)
			}
			if got := tt.level.DiscordColor(); got != tt.color {
				t.Errorf("DiscordColor() = %#x, se esperaba %#x", got, tt.color)
			}
			if tt.level.Color() == "" {
				t.Error("Color() devolvió cadena vacía")
			}
		})
	}
}

func TestErrorWebhookReceivesEmbed(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		r.Body.Read(body)
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	l := newTestLogger(t, srv.URL, "")
	l.Error("fallo en el servicio", "TEST")

	select {
	case body := <-received:
		var payload struct {
			Embeds []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"embeds"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("el webhook recibió un cuerpo inválido: %v", err)
		}
		if len(payload.Embeds) != 1 {
			t.Fatalf("embeds = %d, se esperaba 1", len(payload.Embeds))
		}
		if !strings.Contains(payload.Embeds[0].Title, "ERROR") {
			t.Errorf("título del embed sin nivel: %q", payload.Embeds[0].Title)
		}
		if !strings.Contains(payload.Embeds[0].Description, "fallo en el servicio") {
			t.Errorf("descripción del embed sin el mensaje: %q", payload.Embeds[0].Description)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("el webhook de errores nunca recibió el embed")
	}
}

func TestInfoDoesNotHitErrorWebhook(t *testing.T) {
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	l := newTestLogger(t, srv.URL, "")
	l.Info("mensaje normal", "TEST")

	select {
	case <-received:
		t.Error("un mensaje Info llegó al webhook de errores")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestGlobalLoggerSingleton(t *testing.T) {
	t.Chdir(t.TempDir())
	logger = nil
	once = sync.Once{}

	first := Init("", "")
	if first == nil {
		t.Fatal("Init devolvió nil")
	}
	defer first.Close()

	if second := Init("otro", "otro"); second != first {
		t.Error("Init creó una segunda instancia")
	}
	if got := Get(); got != first {
		t.Error("Get no devuelve la instancia global")
	}
}
