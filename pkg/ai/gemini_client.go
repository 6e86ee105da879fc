package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
)

type gemini struct {
	baseURL string
	key     string
	model   string
	httpc   *http.Client
}

// NewGemini builds a client for the generativelanguage generateContent API.
func NewGemini(key, model string) Client {
	return &gemini{
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		key:     key,
		model:   model,
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.baseURL, "/"), url.PathEscape(c.model), url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Upstream("failed to build AI request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", apperrors.Upstream("AI service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return "", apperrors.Upstream(fmt.Sprintf("AI service returned %d: %s", resp.StatusCode, msg), nil)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.Upstream("failed to decode AI response", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.Upstream("AI response contained no candidates", nil)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
