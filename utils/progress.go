package utils

// CoursePercentage is completed/total*100, and 0 for a course that had no units.
func CoursePercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
