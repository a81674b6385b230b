package performance_case

import (
	"math"

	performance_repo "github.com/rouasschnibir-dot/pfe/internal/repo/performance-repo"
)

// completionRate rounds completed/assigned to a whole percentage. An empty
// task set scores 0, never a division by zero.
func completionRate(counts *performance_repo.TaskCounts) int {
	if counts.Assigned == 0 {
		return 0
	}
	return int(math.Round(float64(counts.Completed) / float64(counts.Assigned) * 100))
}
