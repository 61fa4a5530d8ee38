package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, url string) *Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := NewExecutor(nil, nil).Do(req)
	require.NoError(t, err)
	return resp
}

func TestDo_SuccessJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"fund"}`))
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.True(t, resp.OK)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"name":"fund"}`, string(resp.JSON))
	assert.Empty(t, resp.Text)
	assert.Nil(t, resp.Binary)
}

func TestDo_FailureDiscardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such account"}`))
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.False(t, resp.OK)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Nil(t, resp.JSON)
	assert.Empty(t, resp.Text)
	assert.Nil(t, resp.Binary)
}

func TestDo_MalformedJSONSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"truncated`))
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.True(t, resp.OK)
	assert.Nil(t, resp.JSON)
}

func TestDo_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.True(t, resp.OK)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	assert.Nil(t, resp.JSON)
}

func TestDo_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.True(t, resp.OK)
	assert.Equal(t, "pong", resp.Text)
}

func TestDo_BinaryWithFileName(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="statement.pdf"`)
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	resp := doGet(t, srv.URL)
	assert.True(t, resp.OK)
	assert.Equal(t, pdf, resp.Binary)
	assert.Equal(t, "statement.pdf", resp.FileName)
	assert.Equal(t, "application/pdf", resp.ContentType)
}

func TestDo_TransportFaultPropagates(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/unreachable", nil)
	require.NoError(t, err)

	resp, err := NewExecutor(nil, nil).Do(req)
	require.Error(t, err)
	assert.Nil(t, resp)
}
