// internal/monitor/monitor_test.go
package monitor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestPublishReachesSubscriber(t *testing.T) {
	s := New()
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Start() err=%v", err)
	}
	defer s.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/events", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The subscription registers during the upgrade handler; give the
	// server a beat before publishing.
	deadline := time.Now().Add(2 * time.Second)
	published := false
	for time.Now().Before(deadline) {
		s.Publish(map[string]any{"kind": "detent", "channel": 1})
		published = true

		conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			continue
		}

		var got map[string]any
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("bad payload %q: %v", payload, err)
		}
		if got["kind"] != "detent" {
			t.Fatalf("event = %v", got)
		}
		return
	}
	t.Fatalf("no event received (published=%v)", published)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	s := New()
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Start() err=%v", err)
	}
	defer s.Close()

	// Must not panic or block.
	s.Publish(map[string]any{"kind": "report"})
}

func TestCloseDropsSubscribers(t *testing.T) {
	s := New()
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("Start() err=%v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/events", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() err=%v", err)
	}

	conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected read error after close")
	}
}
