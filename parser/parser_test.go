package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grammatik "github.com/deutschspectrum/grammatik"
)

const parseBody = `{
  "tokens": [
    {"i": 0, "text": "Sie", "start": 0, "end": 3, "pos": "PRON", "lemma": "sie", "dep": "sb", "head": 1, "sent": 0},
    {"i": 1, "text": "begannen", "start": 4, "end": 12, "pos": "VERB", "lemma": "beginnen", "dep": "ROOT", "head": 1, "sent": 0},
    {"i": 2, "text": "damit", "start": 13, "end": 18, "pos": "ADV", "lemma": "damit", "dep": "mo", "head": 1, "sent": 0},
    {"i": 3, "text": ".", "start": 18, "end": 19, "pos": "PUNCT", "lemma": ".", "dep": "punct", "head": 1, "sent": 0}
  ]
}`

func newBridge(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil)
}

func TestParse(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(parseBody))
	})

	doc, err := client.Parse(context.Background(), "Sie begannen damit.")
	require.NoError(t, err)
	require.Len(t, doc.Tokens, 4)

	verb := doc.Tokens[1]
	assert.Equal(t, grammatik.POSVerb, verb.POS)
	assert.Equal(t, "beginnen", verb.Lemma)
	assert.Equal(t, 4, verb.Start)
	assert.Equal(t, 12, verb.End)
	assert.True(t, verb.IsRoot())

	damit := doc.Tokens[2]
	assert.Equal(t, grammatik.POSAdverb, damit.POS)
	assert.Equal(t, 1, damit.Head)
}

func TestParseRejectsBadStatus(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaputt", http.StatusInternalServerError)
	})
	_, err := client.Parse(context.Background(), "Text.")
	assert.Error(t, err)
}

func TestParseRejectsBadJSON(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{nicht json"))
	})
	_, err := client.Parse(context.Background(), "Text.")
	assert.Error(t, err)
}

func TestParseRejectsHeadOutsideDocument(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tokens":[{"i":0,"text":"x","start":0,"end":1,"pos":"X","lemma":"x","dep":"ROOT","head":9,"sent":0}]}`))
	})
	_, err := client.Parse(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "head")
}

func TestParseRejectsNonSequentialIndexes(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tokens":[{"i":3,"text":"x","start":0,"end":1,"pos":"X","lemma":"x","dep":"ROOT","head":0,"sent":0}]}`))
	})
	_, err := client.Parse(context.Background(), "x")
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPingUnhealthy(t *testing.T) {
	client := newBridge(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, client.Ping(context.Background()))
}

func TestPingUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, nil)
	assert.Error(t, client.Ping(context.Background()))
}
