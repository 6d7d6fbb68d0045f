package client

import (
	"context"
	"errors"
	"strings"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/google/uuid"
)

// App is the frontend's state container: the signed-in identity plus the
// current view. Transitions fetch whatever the target view needs on every
// entry; nothing is cached between views.
type App struct {
	API   *Client
	WSURL string

	CurrentUser *models.User
	View        View
}

// NewApp points the application at an API base URL such as
// "http://localhost:8080" and starts on the landing screen.
func NewApp(baseURL string) *App {
	trimmed := strings.TrimRight(baseURL, "/")
	return &App{
		API:   New(trimmed),
		WSURL: "ws" + strings.TrimPrefix(trimmed, "http") + "/ws",
		View:  Landing{},
	}
}

// LoginAs adopts an identity and lands on the dashboard. There are no
// passwords; whatever profile the caller claims is saved as-is, with an
// id minted when none is supplied.
func (a *App) LoginAs(ctx context.Context, user models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	// Fire-and-forget like every mutation in this app: the refreshed
	// dashboard is the only feedback.
	_ = a.API.SaveUser(ctx, user)

	a.CurrentUser = &user
	return a.GoDashboard(ctx)
}

func (a *App) GoLanding() {
	a.leaveView()
	a.CurrentUser = nil
	a.View = Landing{}
}

func (a *App) GoLogin() {
	a.leaveView()
	a.View = Login{}
}

// GoDashboard shows the current user's own postings.
func (a *App) GoDashboard(ctx context.Context) error {
	projects, err := a.API.ListProjects(ctx)
	if err != nil {
		return err
	}

	if a.CurrentUser != nil {
		var own []ProjectSummary
		for _, p := range projects {
			if p.BuyerID == a.CurrentUser.ID {
				own = append(own, p)
			}
		}
		projects = own
	}

	a.leaveView()
	a.View = Dashboard{Projects: projects}
	return nil
}

// GoMarketplace shows every open posting for consultants to browse.
func (a *App) GoMarketplace(ctx context.Context) error {
	projects, err := a.API.ListProjects(ctx)
	if err != nil {
		return err
	}

	a.leaveView()
	a.View = Marketplace{Projects: projects}
	return nil
}

// OpenProject drills into a project picked from a listing. There is no
// single-project endpoint, so the summary travels in from the list view.
func (a *App) OpenProject(ctx context.Context, project ProjectSummary) error {
	bids, err := a.API.ListBids(ctx, project.ID)
	if err != nil {
		return err
	}
	milestones, err := a.API.ListMilestones(ctx, project.ID)
	if err != nil {
		return err
	}

	a.leaveView()
	a.View = ProjectDetail{Project: project, Bids: bids, Milestones: milestones}
	return nil
}

// RequestAdvice fills the open project's consultant ranking.
func (a *App) RequestAdvice(ctx context.Context) error {
	view, ok := a.View.(ProjectDetail)
	if !ok {
		return errors.New("no project open")
	}

	advice, err := a.API.MatchmakingAdvice(ctx, view.Project.ID)
	if err != nil {
		return err
	}

	view.Advice = advice
	a.View = view
	return nil
}

// PostProject submits a posting and returns to the dashboard. The write's
// outcome is not inspected; the refreshed list tells the user whether it
// landed.
func (a *App) PostProject(ctx context.Context, draft ProjectDraft) error {
	if draft.BuyerID == "" && a.CurrentUser != nil {
		draft.BuyerID = a.CurrentUser.ID
	}

	_ = a.API.CreateProject(ctx, draft)
	return a.GoDashboard(ctx)
}

// PlaceBid submits a bid on the open project and re-enters the detail
// view, again without inspecting the write's outcome.
func (a *App) PlaceBid(ctx context.Context, amount float64, proposal string) error {
	view, ok := a.View.(ProjectDetail)
	if !ok {
		return errors.New("no project open")
	}

	draft := BidDraft{ProjectID: view.Project.ID, Amount: amount, Proposal: proposal}
	if a.CurrentUser != nil {
		draft.SellerID = a.CurrentUser.ID
	}

	_ = a.API.CreateBid(ctx, draft)
	return a.OpenProject(ctx, view.Project)
}

// AddMilestone appends a payment step to the open project's schedule and
// re-enters the detail view.
func (a *App) AddMilestone(ctx context.Context, title string, amount float64) error {
	view, ok := a.View.(ProjectDetail)
	if !ok {
		return errors.New("no project open")
	}

	_ = a.API.CreateMilestone(ctx, view.Project.ID, MilestoneDraft{Title: title, Amount: amount})
	return a.OpenProject(ctx, view.Project)
}

// OpenChat starts a live conversation with a peer, joined to the current
// user's own room so echoes and replies both arrive.
func (a *App) OpenChat(peerID string) error {
	if a.CurrentUser == nil {
		return errors.New("not signed in")
	}

	session, err := OpenChatSession(a.WSURL, a.CurrentUser.ID)
	if err != nil {
		return err
	}

	a.leaveView()
	a.View = Chat{PeerID: peerID, Session: session}
	return nil
}

// SendChatMessage sends to the open chat's peer.
func (a *App) SendChatMessage(content string) error {
	view, ok := a.View.(Chat)
	if !ok {
		return errors.New("no chat open")
	}
	return view.Session.Send(a.CurrentUser.ID, view.PeerID, content)
}

// CollectChatMessage blocks for the next relay event and appends it to
// the open chat's local history.
func (a *App) CollectChatMessage(ctx context.Context) (ChatMessage, error) {
	view, ok := a.View.(Chat)
	if !ok {
		return ChatMessage{}, errors.New("no chat open")
	}

	select {
	case msg, ok := <-view.Session.Incoming:
		if !ok {
			return ChatMessage{}, errors.New("chat session closed")
		}
		view.Messages = append(view.Messages, msg)
		a.View = view
		return msg, nil
	case <-ctx.Done():
		return ChatMessage{}, ctx.Err()
	}
}

// leaveView releases resources held by the view being navigated away
// from. Only chat holds any.
func (a *App) leaveView() {
	if chat, ok := a.View.(Chat); ok && chat.Session != nil {
		chat.Session.Close()
	}
}
