package entity

import "time"

type ProjectEntity struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Department string        `json:"department"`
	ManagerID  string        `json:"manager_id"`
	Status     ProjectStatus `json:"status"`
	StartDate  *time.Time    `json:"start_date,omitempty"`
	EndDate    *time.Time    `json:"end_date,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  *time.Time    `json:"updated_at,omitempty"`
}

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "Planned"
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanned, ProjectActive, ProjectCompleted:
		return true
	}
	return false
}
