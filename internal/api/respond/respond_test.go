package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, []byte(`{"ok":true}`), `W/"abc"`, time.Hour, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=1800", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorDetail(rec, http.StatusBadRequest, CodeInvalidBody, "bad body", "malformed JSON")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorBody{Code: CodeInvalidBody, Message: "bad body", Detail: "malformed JSON"}, resp.Error)

	rec = httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, CodeNotFound, "nope")
	assert.NotContains(t, rec.Body.String(), "detail")
}

func TestMarshalKeepsUnicode(t *testing.T) {
	data, err := Marshal(map[string]string{"player": "Martin Ødegaard", "note": "<b>"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Martin Ødegaard")
	assert.Contains(t, string(data), "<b>")
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Query string `json:"query"`
	}
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"ok", `{"query":"goals"}`, ""},
		{"empty", ``, "body is empty"},
		{"malformed", `{"query":`, "malformed JSON"},
		{"two objects", `{"query":"a"}{"query":"b"}`, "single JSON object"},
		{"too large", `{"query":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(tt.in))
			var b body
			err := DecodeJSON(httptest.NewRecorder(), req, &b)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "goals", b.Query)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
