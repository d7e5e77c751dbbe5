package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mr-notifier/internal/telegram"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Send(t *testing.T) {
	t.Run("posts the message with HTML parse mode", func(t *testing.T) {
		var got map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/bottoken123/sendMessage", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"ok": true}`))
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "token123", zap.NewNop())

		err := c.Send(t.Context(), 42, "<b>hello</b>")
		require.NoError(t, err)
		require.Equal(t, float64(42), got["chat_id"])
		require.Equal(t, "<b>hello</b>", got["text"])
		require.Equal(t, "HTML", got["parse_mode"])

		preview, ok := got["link_preview_options"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, true, preview["is_disabled"])
	})

	t.Run("api refusal is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "token123", zap.NewNop())

		err := c.Send(t.Context(), 42, "hello")
		require.Error(t, err)
		require.Contains(t, err.Error(), "chat not found")
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		c := telegram.NewClient(srv.URL, "token123", zap.NewNop())

		require.Error(t, c.Send(t.Context(), 42, "hello"))
	})
}
