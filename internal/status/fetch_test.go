package status

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusServer(t *testing.T, code int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	server := newStatusServer(t, http.StatusOK, `{
		"page": {"id": "p1", "name": "Duo"},
		"components": [
			{"id": "A", "name": "DUO63", "status": "operational", "group": true, "components": ["X"]},
			{"id": "X", "name": "Authentication API", "status": "partial_outage", "group_id": "A"}
		]
	}`)

	components, err := NewFetcher(server.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, Component{ID: "A", Name: "DUO63", Status: "operational", Components: []string{"X"}, Kind: KindGroup}, components[0])
	assert.Equal(t, Component{ID: "X", Name: "Authentication API", Status: "partial_outage", GroupID: "A", Kind: KindLeaf}, components[1])

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "Collected 2 components", hook.LastEntry().Message)
}

func TestFetcher_FetchEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty components list", body: `{"components": []}`},
		{name: "no components key", body: `{"page": {"id": "p1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newStatusServer(t, http.StatusOK, tt.body)

			components, err := NewFetcher(server.URL, time.Second).Fetch(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, components)
			assert.Empty(t, components)
		})
	}
}

func TestFetcher_FetchError(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
	}{
		{name: "server error", code: http.StatusInternalServerError, body: `{}`},
		{name: "malformed body", code: http.StatusOK, body: `<html>maintenance</html>`},
		{name: "components is not a list", code: http.StatusOK, body: `{"components": "none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newStatusServer(t, tt.code, tt.body)

			components, err := NewFetcher(server.URL, time.Second).Fetch(context.Background())
			assert.Nil(t, components)
			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, server.URL, fetchErr.URL)
		})
	}
}

func TestFetcher_FetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewFetcher(url, time.Second).Fetch(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), url)
}

func TestFetcher_FetchOrEmpty(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var out bytes.Buffer
	components := NewFetcher(url, time.Second).FetchOrEmpty(context.Background(), &out)

	assert.NotNil(t, components)
	assert.Empty(t, components)
	assert.Equal(t, "An error occurred while requesting \""+url+"\".\n", out.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestFetcher_FetchOrEmptySuccess(t *testing.T) {
	server := newStatusServer(t, http.StatusOK, `{"components": [{"id": "X", "name": "Admin Panel", "status": "operational"}]}`)

	var out bytes.Buffer
	components := NewFetcher(server.URL, time.Second).FetchOrEmpty(context.Background(), &out)

	require.Len(t, components, 1)
	assert.Equal(t, "Admin Panel", components[0].Name)
	assert.Empty(t, out.String())
}
