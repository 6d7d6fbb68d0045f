package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path   string
	Key    string
	Prompt string
}

// newProvider fakes the generative API with a fixed JSON reply and
// records what the gateway sent.
func newProvider(t *testing.T, reply string) (*Gateway, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Key = r.URL.Query().Get("key")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			captured.Prompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return NewGateway("secret-key", "gemini-test", srv.URL), captured
}

func TestDraftJobDescriptionTargetsModelEndpoint(t *testing.T) {
	gateway, captured := newProvider(t, `{"candidates":[{"content":{"parts":[{"text":"A polished description."}]}}]}`)

	text, err := gateway.DraftJobDescription(context.Background(), "revamp our onboarding, budget around 4k")
	require.NoError(t, err)
	assert.Equal(t, "A polished description.", text)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", captured.Path)
	assert.Equal(t, "secret-key", captured.Key)
	assert.Contains(t, captured.Prompt, "revamp our onboarding, budget around 4k")
}

func TestGenerateConcatenatesAnswerParts(t *testing.T) {
	gateway, _ := newProvider(t, `{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"world"}]}}]}`)

	text, err := gateway.DraftJobDescription(context.Background(), "brief")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestAnalyzeBidPromptCarriesBothTexts(t *testing.T) {
	gateway, captured := newProvider(t, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)

	_, err := gateway.AnalyzeBid(context.Background(),
		"Benchmark salaries across three metros.",
		"I bring my own dataset.")
	require.NoError(t, err)

	assert.Contains(t, captured.Prompt, "Benchmark salaries across three metros.")
	assert.Contains(t, captured.Prompt, "I bring my own dataset.")
}

func TestMatchmakingPromptCarriesProjectAndConsultants(t *testing.T) {
	gateway, captured := newProvider(t, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)

	_, err := gateway.MatchmakingAdvice(context.Background(),
		"Onboarding Revamp",
		"Rebuild the 90-day journey.",
		"1. Marcus Webb: onboarding specialist\n2. Priya Nair: compensation analyst\n")
	require.NoError(t, err)

	assert.Contains(t, captured.Prompt, "Onboarding Revamp")
	assert.Contains(t, captured.Prompt, "Rebuild the 90-day journey.")
	assert.Contains(t, captured.Prompt, "2. Priya Nair: compensation analyst")
}

func TestNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	t.Cleanup(srv.Close)

	gateway := NewGateway("k", "m", srv.URL)
	_, err := gateway.DraftJobDescription(context.Background(), "brief")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestEmptyCandidatesIsAnError(t *testing.T) {
	gateway, _ := newProvider(t, `{"candidates":[]}`)

	_, err := gateway.DraftJobDescription(context.Background(), "brief")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
