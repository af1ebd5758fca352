package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	log "github.com/inconshreveable/log15/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/route"
	"github.com/katalvlaran/shortway/scene"
	"github.com/katalvlaran/shortway/transport/websocket"
	"github.com/katalvlaran/shortway/waypoint"
)

type fixture struct {
	hub  *websocket.Hub
	http *httptest.Server
}

func newFixture(t *testing.T, body string) *fixture {
	t.Helper()
	sc, err := scene.Parse([]byte(body))
	require.NoError(t, err)

	logger := log.New()
	logger.SetHandler(log.DiscardHandler())

	bus := events.NewBus()
	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	hub.Subscribe(bus)

	p, err := route.NewPlanner(sc, route.WithBus(bus))
	require.NoError(t, err)
	srv, err := newServer(context.Background(), p, hub, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &fixture{hub: hub, http: ts}
}

func (f *fixture) do(t *testing.T, method, path string, into any) int {
	t.Helper()
	req, err := http.NewRequest(method, f.http.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if into != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}

	return resp.StatusCode
}

func (f *fixture) dial(t *testing.T, sceneName string) *gorillaws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws?scene=" + sceneName
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return f.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	return conn
}

func readEvent(t *testing.T, conn *gorillaws.Conn) websocket.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg websocket.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestServer_GetRoute(t *testing.T) {
	f := newFixture(t, lineScene)

	var r route.Route
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/route", &r))
	assert.True(t, r.Found)
	assert.Equal(t, []waypoint.ID{0, 3}, r.Path)
}

func TestServer_Arrive(t *testing.T) {
	f := newFixture(t, lineScene)

	var st travelerState
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/traveler", &st))
	require.NotNil(t, st.Target)
	assert.Equal(t, waypoint.ID(0), st.Target.ID)
	assert.Equal(t, 2, st.Remaining)

	st = travelerState{}
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/arrive?id=3", &st))
	assert.False(t, st.Advanced, "#3 is not the current target")
	assert.Equal(t, []waypoint.ID{3}, st.Visited)

	st = travelerState{}
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/arrive?id=0", &st))
	assert.True(t, st.Advanced)
	assert.Equal(t, waypoint.ID(3), st.Target.ID)

	st = travelerState{}
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/arrive?id=3", &st))
	assert.True(t, st.Advanced)
	assert.True(t, st.Done)
	assert.Nil(t, st.Target)
	assert.Equal(t, 0, st.Remaining)
}

func TestServer_ArriveErrors(t *testing.T) {
	f := newFixture(t, lineScene)

	var body map[string]string
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/arrive?id=abc", &body))
	assert.Contains(t, body["error"], "abc")

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/arrive?id=42", &body))
	assert.Contains(t, body["error"], "42")
}

func TestServer_ArriveWithoutRoute(t *testing.T) {
	f := newFixture(t, strings.Replace(lineScene, "x: 3, y: 0, role: end", "x: 30, y: 0, role: end", 1))

	var r route.Route
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/route", &r))
	assert.False(t, r.Found)
	assert.Equal(t, 3, r.Reachable)

	var body map[string]string
	assert.Equal(t, http.StatusConflict, f.do(t, http.MethodPost, "/arrive?id=0", &body))
}

func TestServer_WebSocketEvents(t *testing.T) {
	f := newFixture(t, lineScene)
	conn := f.dial(t, "demo")

	var r route.Route
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/route", &r))
	msg := readEvent(t, conn)
	assert.Equal(t, events.NamePathFound, msg.Event)
	assert.Equal(t, "demo", msg.Scene)

	for _, id := range []string{"0", "3"} {
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/arrive?id="+id, nil))
	}
	msg = readEvent(t, conn)
	assert.Equal(t, events.NameTraversalComplete, msg.Event)
	assert.Equal(t, map[string]any{"scene": "demo", "visited": []any{0.0, 3.0}}, msg.Data)
}
