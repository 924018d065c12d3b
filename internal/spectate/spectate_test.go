package spectate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-dash/internal/dash"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
	asked   string
}

func (f *fakeScores) TopScores(profile string, limit int) ([]storage.ScoreEntry, error) {
	f.asked = profile
	if len(f.entries) > limit {
		return f.entries[:limit], f.err
	}
	return f.entries, f.err
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForWatchers(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Watchers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("watchers = %d, want %d", hub.Watchers(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) dash.Snapshot {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var snap dash.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return snap
}

func TestHubBroadcastsFrames(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(NewServer(hub, nil).Router())
	defer srv.Close()

	conn := dial(t, srv)
	waitForWatchers(t, hub, 1)

	hub.Frame(dash.Snapshot{Tick: 1, State: "running", Score: 10, Lives: 3})
	hub.Frame(dash.Snapshot{Tick: 2, State: "paused", Score: 11, Lives: 2})

	first := readSnapshot(t, conn)
	second := readSnapshot(t, conn)
	if first.Tick != 1 || first.Score != 10 {
		t.Errorf("first frame = %+v", first)
	}
	if second.State != "paused" || second.Lives != 2 {
		t.Errorf("second frame = %+v", second)
	}
}

func TestHubSendsLastFrameOnJoin(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(NewServer(hub, nil).Router())
	defer srv.Close()

	hub.Frame(dash.Snapshot{Tick: 99, State: "terminated", Outcome: "victory", Score: 4000})

	conn := dial(t, srv)
	snap := readSnapshot(t, conn)
	if snap.Tick != 99 || snap.Outcome != "victory" {
		t.Errorf("join frame = %+v", snap)
	}
}

func TestHubWatcherLeaves(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(NewServer(hub, nil).Router())
	defer srv.Close()

	conn := dial(t, srv)
	waitForWatchers(t, hub, 1)
	conn.Close()
	waitForWatchers(t, hub, 0)

	// Frames without watchers are fine.
	hub.Frame(dash.Snapshot{Tick: 1})
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(NewHub(nil), nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		OK       bool `json:"ok"`
		Watchers int  `json:"watchers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Watchers != 0 {
		t.Errorf("health = %+v", body)
	}
}

func TestScoresRoute(t *testing.T) {
	scores := &fakeScores{entries: []storage.ScoreEntry{{Score: 900}, {Score: 300}}}
	srv := httptest.NewServer(NewServer(NewHub(nil), scores).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/scores/alice")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Profile string `json:"profile"`
		Scores  []struct {
			Rank  int `json:"rank"`
			Score int `json:"score"`
		} `json:"scores"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if scores.asked != "alice" || body.Profile != "alice" {
		t.Errorf("profile = %q, asked %q", body.Profile, scores.asked)
	}
	if len(body.Scores) != 2 || body.Scores[0].Rank != 1 || body.Scores[0].Score != 900 {
		t.Errorf("scores = %+v", body.Scores)
	}
}

func TestScoresRouteErrors(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreSource
		want   int
	}{
		{"no storage", nil, http.StatusServiceUnavailable},
		{"query fails", &fakeScores{err: errors.New("locked")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(NewServer(NewHub(nil), tt.scores).Router())
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/scores/bob")
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(NewServer(NewHub(nil), nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
