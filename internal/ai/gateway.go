package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
)

// Gateway is a stateless client for a hosted generative-text API. It sends
// one prompt per call and hands back whatever text the provider produced.
// No retries and no caching; slow providers block the caller until the
// request context is done.
type Gateway struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGateway(apiKey, model, baseURL string) *Gateway {
	return &Gateway{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

// DraftJobDescription turns a buyer's rough brief into a polished project
// description ready for posting.
func (g *Gateway) DraftJobDescription(ctx context.Context, brief string) (string, error) {
	prompt, err := renderPrompt(jobDescriptionTemplate, map[string]string{
		"Brief": brief,
	})
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt)
}

// AnalyzeBid reviews one proposal against the project it was submitted to.
func (g *Gateway) AnalyzeBid(ctx context.Context, projectDescription, proposal string) (string, error) {
	prompt, err := renderPrompt(bidAnalysisTemplate, map[string]string{
		"ProjectDescription": projectDescription,
		"Proposal":           proposal,
	})
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt)
}

// MatchmakingAdvice ranks the listed consultants for a project. The
// consultants argument is a prebuilt numbered list of names and bios.
func (g *Gateway) MatchmakingAdvice(ctx context.Context, title, description, consultants string) (string, error) {
	prompt, err := renderPrompt(matchmakingTemplate, map[string]string{
		"Title":       title,
		"Description": description,
		"Consultants": consultants,
	})
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt)
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate error: %d: %s", resp.StatusCode, body)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("generate response has no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

func renderPrompt(tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
