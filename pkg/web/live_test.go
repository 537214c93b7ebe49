package web

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newTestLiveServer(t *testing.T) (*LiveHub, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewLiveHub()
	engine := gin.New()
	engine.GET("/live", hub.ServeWS)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("no se pudo conectar al feed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Esperar a que el hub registre al cliente
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatal("el cliente nunca quedó registrado en el hub")
	}
	return hub, conn
}

func TestLiveHubBroadcastDeliversEvent(t *testing.T) {
	hub, conn := newTestLiveServer(t)

	hub.Broadcast("level_up", "g1", "u1", map[string]interface{}{"level": 2})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("no llegó el evento: %v", err)
	}

	var event LiveEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("evento mal formado: %v", err)
	}
	if event.Type != "level_up" || event.GuildID != "g1" || event.UserID != "u1" {
		t.Errorf("evento inesperado: %+v", event)
	}
}

func TestLiveHubConcurrentBroadcasts(t *testing.T) {
	hub, conn := newTestLiveServer(t)

	// Varios eventos simultáneos (dos subidas de nivel a la vez, por
	// ejemplo) nunca deben escribir a la conexión al mismo tiempo
	var wg sync.WaitGroup
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				hub.Broadcast("level_up", "g1", fmt.Sprintf("u%d", n), map[string]interface{}{"level": i})
			}
		}(g)
	}
	wg.Wait()

	// Cada frame que llega debe ser un evento entero y bien formado
	received := 0
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var event LiveEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("frame corrupto tras emisiones concurrentes: %v", err)
		}
		if event.Type != "level_up" {
			t.Errorf("tipo de evento inesperado: %q", event.Type)
		}
		received++
		if received >= sendBufferSize {
			break
		}
	}
	if received == 0 {
		t.Fatal("ningún evento sobrevivió a las emisiones concurrentes")
	}
}

func TestLiveHubRemovesClientOnDisconnect(t *testing.T) {
	hub, conn := newTestLiveServer(t)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 0 {
		t.Error("el cliente desconectado sigue registrado")
	}

	// Emitir sin clientes no debe entrar en pánico
	hub.Broadcast("level_up", "g1", "u1", nil)
}
