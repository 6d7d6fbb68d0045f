package models

import (
	"math"
)

type Milestone struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Title     string `gorm:"size:200;not null" json:"title"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"` // pending, completed, paid

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// ProjectMilestones builds the default payment schedule for a new project:
// a 20/40/40 split of the minimum budget, each amount rounded down to a
// whole unit.
func ProjectMilestones(projectID uint, budgetMin float64) []Milestone {
	return []Milestone{
		{ProjectID: projectID, Title: "Project Kickoff", Amount: math.Floor(budgetMin * 0.2)},
		{ProjectID: projectID, Title: "Midpoint Deliverable", Amount: math.Floor(budgetMin * 0.4)},
		{ProjectID: projectID, Title: "Final Delivery", Amount: math.Floor(budgetMin * 0.4)},
	}
}
