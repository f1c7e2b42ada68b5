package feed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lox/wordle/internal/board"
	"github.com/lox/wordle/internal/wordle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger creates a logger that discards output for tests
func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readBoard(t *testing.T, conn *websocket.Conn) (Message, board.Board) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, MessageTypeBoard, msg.Type)

	var b board.Board
	require.NoError(t, json.Unmarshal(msg.Data, &b))
	return msg, b
}

func TestServerHealth(t *testing.T) {
	s := NewServer(":0", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestServerState(t *testing.T) {
	s := NewServer(":0", testLogger())
	state := wordle.NewGameWithSolution("CRANE")
	state, _ = wordle.Apply(state, wordle.AppendLetter{Letter: 'c'})
	s.Publish(state)

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var msg Message
	require.NoError(t, json.NewDecoder(w.Body).Decode(&msg))
	assert.Equal(t, uint64(2), msg.Sequence)

	var b board.Board
	require.NoError(t, json.Unmarshal(msg.Data, &b))
	assert.True(t, b.Ready)
	assert.Equal(t, "C", b.Rows[0].Cells[0].Letter)
	assert.Empty(t, b.Solution, "solution is not leaked while playing")
}

func TestViewerReceivesSnapshots(t *testing.T) {
	s := NewServer(":0", testLogger())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)

	_, initial := readBoard(t, conn)
	assert.False(t, initial.Ready)

	require.Eventually(t, func() bool { return s.ViewerCount() == 1 }, time.Second, 10*time.Millisecond)

	state := wordle.NewGameWithSolution("CRANE")
	for _, r := range "TRAIN" {
		state, _ = wordle.Apply(state, wordle.AppendLetter{Letter: r})
	}
	state, _ = wordle.Apply(state, wordle.Submit{})
	s.Publish(state)

	msg, b := readBoard(t, conn)
	assert.Equal(t, uint64(2), msg.Sequence)
	assert.True(t, b.Rows[0].Submitted)
	assert.Equal(t, board.CellCorrect, b.Rows[0].Cells[1].State)
}

func TestViewerMessagesAreIgnored(t *testing.T) {
	s := NewServer(":0", testLogger())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	readBoard(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"submit"}`)))

	s.Publish(wordle.NewGameWithSolution("CRANE"))
	_, b := readBoard(t, conn)
	assert.Equal(t, 0, b.Turn)
	assert.True(t, b.Ready)
}

func TestViewerDisconnect(t *testing.T) {
	s := NewServer(":0", testLogger())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	readBoard(t, conn)
	require.Eventually(t, func() bool { return s.ViewerCount() == 1 }, time.Second, 10*time.Millisecond)

	_ = conn.Close()

	assert.Eventually(t, func() bool { return s.ViewerCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestShutdownBeforeStart(t *testing.T) {
	s := NewServer("127.0.0.1:0", testLogger())

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, s.Start())
}
