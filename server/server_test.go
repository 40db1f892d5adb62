package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtap/evtap/gesture"
)

type recordingDispatcher struct {
	commands []string
}

func (d *recordingDispatcher) Dispatch(command string) error {
	d.commands = append(d.commands, command)
	return nil
}

func newTestServer(dispatcher *recordingDispatcher) (*Server, *gesture.Engine) {
	rules := []gesture.Rule{
		{Kind: gesture.KindTap, Fingers: 3, Command: "notify"},
	}
	engine := gesture.NewEngine(rules, dispatcher, 30)

	srv := New(Config{
		Addr:       "localhost:12000",
		Device:     "/dev/input/event2",
		Rules:      rules,
		Engine:     engine,
		Dispatcher: dispatcher,
	})
	return srv, engine
}

func TestExecute_Status(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	srv.ObserveFrame(2)
	srv.ObserveFrame(3)

	result, err := srv.Execute("status", nil)
	require.NoError(t, err)

	status, ok := result.(StatusInfo)
	require.True(t, ok)
	assert.Equal(t, "/dev/input/event2", status.Device)
	assert.Equal(t, 1, status.Rules)
	assert.Equal(t, uint64(2), status.Frames)
	assert.Equal(t, 3, status.Fingers)
}

func TestExecute_Rules(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	result, err := srv.Execute("rules", nil)
	require.NoError(t, err)

	rules, ok := result.([]gesture.Rule)
	require.True(t, ok)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].Fingers)
}

func TestExecute_Events(t *testing.T) {
	srv, engine := newTestServer(&recordingDispatcher{})

	engine.OnFrame(3)

	result, err := srv.Execute("events", nil)
	require.NoError(t, err)

	events, ok := result.([]gesture.FireEvent)
	require.True(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, "notify", events[0].Command)
}

func TestExecute_Fire(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	srv, _ := newTestServer(dispatcher)

	_, err := srv.Execute("fire", json.RawMessage(`{"fingers":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"notify"}, dispatcher.commands)

	_, err = srv.Execute("fire", json.RawMessage(`{"fingers":9}`))
	assert.Error(t, err)

	_, err = srv.Execute("fire", nil)
	assert.Error(t, err)
}

func TestExecute_UnknownMethod(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	_, err := srv.Execute("does_not_exist", nil)
	assert.Error(t, err)
}

func postRPC(t *testing.T, srv *Server, body string) JSONRPCResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.handleJSONRPC(rec, req)

	var response JSONRPCResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response
}

func TestHandleJSONRPC_Status(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})
	srv.ObserveFrame(1)

	response := postRPC(t, srv, `{"jsonrpc":"2.0","method":"status","id":1}`)

	assert.Nil(t, response.Error)
	result, ok := response.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/dev/input/event2", result["device"])
	assert.Equal(t, float64(1), result["frames"])
}

func TestHandleJSONRPC_Validation(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	// wrong version
	response := postRPC(t, srv, `{"jsonrpc":"1.0","method":"status","id":1}`)
	assert.NotNil(t, response.Error)

	// missing id
	response = postRPC(t, srv, `{"jsonrpc":"2.0","method":"status"}`)
	assert.NotNil(t, response.Error)

	// missing method
	response = postRPC(t, srv, `{"jsonrpc":"2.0","id":1}`)
	assert.NotNil(t, response.Error)

	// not json at all
	response = postRPC(t, srv, `{{{`)
	assert.NotNil(t, response.Error)
}

func TestHandleJSONRPC_MethodNotFound(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	response := postRPC(t, srv, `{"jsonrpc":"2.0","method":"bogus","id":7}`)

	require.NotNil(t, response.Error)
	errObj, ok := response.Error.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(ErrCodeMethodNotFound), errObj["code"])
}

func TestHandleJSONRPC_RejectsGet(t *testing.T) {
	srv, _ := newTestServer(&recordingDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/rpc", nil)
	rec := httptest.NewRecorder()
	srv.handleJSONRPC(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
