// Package client is the application core of the marketplace frontend.
// A typed API client and a sealed set of view states sit under an App
// container that also manages the live chat session. Nothing here
// renders, so any UI layer can drive it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"
)

// Client is a thin REST client for the marketplace API.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ProjectSummary is one row of the project listing, which carries the
// buyer's display name alongside the project columns.
type ProjectSummary struct {
	ID          uint      `json:"id"`
	BuyerID     string    `json:"buyer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BudgetMin   float64   `json:"budget_min"`
	BudgetMax   float64   `json:"budget_max"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	BuyerName   string    `json:"buyer_name"`
}

// BidSummary is one row of a project's bid listing, with the seller's
// display name joined in.
type BidSummary struct {
	ID         uint      `json:"id"`
	ProjectID  uint      `json:"project_id"`
	SellerID   string    `json:"seller_id"`
	Amount     float64   `json:"amount"`
	Proposal   string    `json:"proposal"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	SellerName string    `json:"seller_name"`
}

// ProjectDraft is the body of a project posting.
type ProjectDraft struct {
	BuyerID     string  `json:"buyer_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BudgetMin   float64 `json:"budget_min"`
	BudgetMax   float64 `json:"budget_max"`
}

// BidDraft is the body of a bid submission.
type BidDraft struct {
	ProjectID uint    `json:"project_id"`
	SellerID  string  `json:"seller_id"`
	Amount    float64 `json:"amount"`
	Proposal  string  `json:"proposal"`
}

// MilestoneDraft is the body of a manually added milestone.
type MilestoneDraft struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

func (c *Client) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	var projects []ProjectSummary
	if err := c.getJSON(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/projects", draft, nil)
}

// GetUser returns nil without error for an unknown id; the API answers
// those with a null body rather than a 404.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	if err := c.getJSON(ctx, "/api/users/"+id, &user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) SaveUser(ctx context.Context, user models.User) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/users/"+user.ID, user, nil)
}

func (c *Client) CreateBid(ctx context.Context, draft BidDraft) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/bids", draft, nil)
}

func (c *Client) ListBids(ctx context.Context, projectID uint) ([]BidSummary, error) {
	var bids []BidSummary
	if err := c.getJSON(ctx, fmt.Sprintf("/api/projects/%d/bids", projectID), &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (c *Client) ListMilestones(ctx context.Context, projectID uint) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := c.getJSON(ctx, fmt.Sprintf("/api/projects/%d/milestones", projectID), &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func (c *Client) CreateMilestone(ctx context.Context, projectID uint, draft MilestoneDraft) error {
	return c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%d/milestones", projectID), draft, nil)
}

func (c *Client) MatchmakingAdvice(ctx context.Context, projectID uint) (string, error) {
	var resp struct {
		Advice string `json:"advice"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/projects/%d/matchmaking", projectID), &resp); err != nil {
		return "", err
	}
	return resp.Advice, nil
}

func (c *Client) DraftJobDescription(ctx context.Context, brief string) (string, error) {
	var resp struct {
		Description string `json:"description"`
	}
	body := map[string]string{"brief": brief}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/ai/job-description", body, &resp); err != nil {
		return "", err
	}
	return resp.Description, nil
}

func (c *Client) AnalyzeBid(ctx context.Context, projectDescription, proposal string) (string, error) {
	var resp struct {
		Analysis string `json:"analysis"`
	}
	body := map[string]string{
		"project_description": projectDescription,
		"proposal":            proposal,
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/ai/bid-analysis", body, &resp); err != nil {
		return "", err
	}
	return resp.Analysis, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %d: %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
