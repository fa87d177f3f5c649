// Package parser is the HTTP client for the external dependency parser. The
// parser bridge owns segmentation, tokenization, POS tagging, dependency
// parsing and morphology; this package only converts its wire format into a
// grammatik.Document.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	grammatik "github.com/deutschspectrum/grammatik"
)

// Client talks to the parser bridge over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client for the bridge at baseURL. timeout bounds each
// request.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// wireToken is one token in the bridge's response.
type wireToken struct {
	Index    int    `json:"i"`
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	POS      string `json:"pos"`
	Lemma    string `json:"lemma"`
	Dep      string `json:"dep"`
	Head     int    `json:"head"`
	CaseFeat string `json:"case,omitempty"`
	Sent     int    `json:"sent"`
}

type parseResponse struct {
	Tokens []wireToken `json:"tokens"`
}

// Parse sends text to the bridge and decodes the result into a Document.
// The head-index contract is checked here so that a malformed response is
// reported as an error instead of surfacing later as an engine panic.
func (c *Client) Parse(ctx context.Context, text string) (*grammatik.Document, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encoding parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser returned status %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decoding parser response: %w", err)
	}
	c.logger.Debug("parsed text",
		slog.Int("tokens", len(pr.Tokens)),
		slog.Duration("took", time.Since(start)))

	doc := &grammatik.Document{Tokens: make([]grammatik.Token, 0, len(pr.Tokens))}
	for i, wt := range pr.Tokens {
		if wt.Index != i {
			return nil, fmt.Errorf("parser response token %d carries index %d", i, wt.Index)
		}
		if wt.Head < 0 || wt.Head >= len(pr.Tokens) {
			return nil, fmt.Errorf("parser response token %d (%q) has head %d outside document of %d tokens",
				i, wt.Text, wt.Head, len(pr.Tokens))
		}
		doc.Tokens = append(doc.Tokens, grammatik.Token{
			Index:    wt.Index,
			Text:     wt.Text,
			Start:    wt.Start,
			End:      wt.End,
			POS:      grammatik.POS(wt.POS),
			Lemma:    wt.Lemma,
			Dep:      wt.Dep,
			Head:     wt.Head,
			CaseFeat: wt.CaseFeat,
			Sent:     wt.Sent,
		})
	}
	return doc, nil
}

// Ping checks that the bridge is reachable and healthy. The server calls it
// once at startup; an unreachable parser is fatal there.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("parser unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("parser health returned status %d", resp.StatusCode)
	}
	return nil
}
