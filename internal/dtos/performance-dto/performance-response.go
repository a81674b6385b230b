package performance_dto

import "github.com/rouasschnibir-dot/pfe/internal/entity"

type PerformanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	TasksAssigned  int    `json:"tasks_assigned"`
	TasksCompleted int    `json:"tasks_completed"`
	CompletionRate int    `json:"completion_rate"`
	Period         string `json:"period"`
}

type ProjectProgressResponse struct {
	ProjectID string `json:"project_id"`
	Progress  int    `json:"progress"`
}

func FromSnapshot(s *entity.PerformanceSnapshot) PerformanceResponse {
	return PerformanceResponse{
		EmployeeID:     s.EmployeeID,
		TasksAssigned:  s.TasksAssigned,
		TasksCompleted: s.TasksCompleted,
		CompletionRate: s.CompletionRate,
		Period:         s.Period,
	}
}
