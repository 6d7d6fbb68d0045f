package client

import (
	"fmt"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"
)

// View is the closed set of screens the application can show. The view()
// marker keeps the set sealed so ViewName can switch exhaustively.
type View interface {
	view()
}

// Landing is the public start screen.
type Landing struct{}

// Login is the identity picker. There are no credentials; the user
// chooses who to be.
type Login struct{}

// Dashboard shows the signed-in buyer's own postings.
type Dashboard struct {
	Projects []ProjectSummary
}

// Marketplace shows every posted project.
type Marketplace struct {
	Projects []ProjectSummary
}

// ProjectDetail shows one project with its bids and payment schedule.
// Advice stays empty until the user asks for a consultant ranking.
type ProjectDetail struct {
	Project    ProjectSummary
	Bids       []BidSummary
	Milestones []models.Milestone
	Advice     string
}

// Chat is a live conversation with one peer. Messages grow as relay
// events are collected; nothing is fetched from the API here.
type Chat struct {
	PeerID   string
	Session  *ChatSession
	Messages []ChatMessage
}

func (Landing) view()       {}
func (Login) view()         {}
func (Dashboard) view()     {}
func (Marketplace) view()   {}
func (ProjectDetail) view() {}
func (Chat) view()          {}

// ViewName returns the screen identifier a UI layer would route on.
func ViewName(v View) string {
	switch v.(type) {
	case Landing:
		return "landing"
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	case Marketplace:
		return "marketplace"
	case ProjectDetail:
		return "project-detail"
	case Chat:
		return "chat"
	default:
		panic(fmt.Sprintf("unknown view type %T", v))
	}
}
