package domain

// Progress tracks locally which challenge days the user has completed.
// CompletedDays is kept sorted ascending with no duplicates; LastRead maps a
// day to the epoch-millisecond timestamp of its completion; TotalTimeSpent is
// accumulated reading time in milliseconds.
type Progress struct {
	CompletedDays  []int         `json:"completedDays"`
	LastRead       map[int]int64 `json:"lastRead"`
	Streak         int           `json:"streak"`
	TotalTimeSpent int64         `json:"totalTimeSpent"`
}

func (p Progress) IsCompleted(day int) bool {
	for _, d := range p.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}
