package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logx "hwbot/pkg/logx"
)

type botAPI struct {
	mu    sync.Mutex
	texts []string
	chats []string
	fail  bool
}

func (b *botAPI) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
		return
	}
	var params map[string]any
	_ = json.NewDecoder(r.Body).Decode(&params)
	b.mu.Lock()
	b.texts = append(b.texts, params["text"].(string))
	b.chats = append(b.chats, params["chat_id"].(string))
	fail := b.fail
	b.mu.Unlock()
	if fail {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
}

func newTestSender(t *testing.T, api *botAPI) *Sender {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(api.handler))
	t.Cleanup(srv.Close)
	s, err := New(Config{Token: "123:abc", APIURL: srv.URL}, logx.Nop())
	require.NoError(t, err)
	return s
}

func TestSendText(t *testing.T) {
	t.Parallel()
	api := &botAPI{}
	s := newTestSender(t, api)

	require.NoError(t, s.SendText(context.Background(), "42", "hello"))
	assert.Equal(t, []string{"hello"}, api.texts)
	assert.Equal(t, []string{"42"}, api.chats)
}

func TestSendTextError(t *testing.T) {
	t.Parallel()
	api := &botAPI{fail: true}
	s := newTestSender(t, api)

	assert.Error(t, s.SendText(context.Background(), "42", "hello"))
	assert.Error(t, s.SendText(context.Background(), " ", "hello"))
}

func TestSendTextErrorHidesToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	apiURL := srv.URL
	srv.Close()

	const token = "123456:SECRET-BOT-TOKEN"
	s, err := New(Config{Token: token, APIURL: apiURL}, logx.Nop())
	require.NoError(t, err)

	err = s.SendText(context.Background(), "42", "hello")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-BOT-TOKEN")
	assert.Contains(t, err.Error(), "telegram post")
}

func TestRedactPlainError(t *testing.T) {
	t.Parallel()
	s := &Sender{token: "123456:SECRET"}
	err := s.redact(errors.New("telebot: bad request at /bot123456:SECRET/sendMessage"))
	assert.Equal(t, "telebot: bad request at /bot<token>/sendMessage", err.Error())

	plain := errors.New("chat not found")
	assert.Same(t, plain, s.redact(plain))
}

func TestNewRequiresToken(t *testing.T) {
	t.Parallel()
	_, err := New(Config{Token: "  "}, logx.Nop())
	assert.Error(t, err)
}

func TestSplitTelegramText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"short"}, splitTelegramText("short", 10))

	chunks := splitTelegramText(strings.Repeat("а", 25), 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("а", 10), chunks[0])
	assert.Equal(t, strings.Repeat("а", 5), chunks[2])

	chunks = splitTelegramText("aaaaaa\nbbbbbbbbbb", 10)
	assert.Equal(t, []string{"aaaaaa", "bbbbbbbbbb"}, chunks)
}
