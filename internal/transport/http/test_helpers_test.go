package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/Kamzyled/Love-moyosola/internal/config"
	"github.com/Kamzyled/Love-moyosola/internal/core"
	"github.com/Kamzyled/Love-moyosola/internal/proto"
	"github.com/Kamzyled/Love-moyosola/internal/questions"
	"github.com/Kamzyled/Love-moyosola/internal/store"
)

func testBank() *questions.Bank {
	return questions.New(map[string][]string{
		"romantic": {"first date?", "favorite dish?", "honeymoon city?"},
	})
}

func startTestServer(t *testing.T, st store.Store, advanceDelay time.Duration) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	bank := testBank()
	hub := core.NewHub(bank, st, advanceDelay, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, bank, st, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + ts.URL[len("http"):] + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, typ string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: data}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

type outboundEnvelope struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

// readEvent discards messages until the named event arrives.
func readEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string) json.RawMessage {
	t.Helper()

	for {
		var out outboundEnvelope
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read waiting for %s: %v", event, err)
		}
		if out.Type == proto.OutboundTypeEvent && out.Event == event {
			return out.Data
		}
	}
}

// readError discards messages until an error envelope arrives.
func readError(t *testing.T, ctx context.Context, conn *websocket.Conn) *proto.Error {
	t.Helper()

	for {
		var out outboundEnvelope
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read waiting for error: %v", err)
		}
		if out.Type == proto.OutboundTypeError && out.Error != nil {
			return out.Error
		}
	}
}
