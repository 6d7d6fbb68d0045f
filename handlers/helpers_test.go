package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/config"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ai"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory store pinned to a single connection so
// every query sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

// newTestApp wires the full route surface onto a fresh app and store.
// The seeded demo users and projects are present.
func newTestApp(t *testing.T, gateway *ai.Gateway) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	hub := ws.NewHub()
	go hub.Run()

	app := fiber.New()
	RegisterRoutes(app, db, hub, gateway)
	return app, db
}

// stubAI fakes the generative-text provider, recording every prompt it
// was asked to complete.
type stubAI struct {
	Server *httptest.Server
	Calls  atomic.Int32
	Reply  string
	Status int

	mu      sync.Mutex
	Prompts []string
}

func newStubAI(t *testing.T, reply string) *stubAI {
	t.Helper()

	s := &stubAI{Reply: reply, Status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Calls.Add(1)

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil &&
			len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			s.mu.Lock()
			s.Prompts = append(s.Prompts, req.Contents[0].Parts[0].Text)
			s.mu.Unlock()
		}

		w.Header().Set("Content-Type", "application/json")
		if s.Status != http.StatusOK {
			w.WriteHeader(s.Status)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": s.Reply}},
				}},
			},
		})
	}))
	t.Cleanup(s.Server.Close)
	return s
}

func (s *stubAI) Gateway() *ai.Gateway {
	return ai.NewGateway("test-key", "test-model", s.Server.URL)
}

func (s *stubAI) LastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Prompts) == 0 {
		return ""
	}
	return s.Prompts[len(s.Prompts)-1]
}
