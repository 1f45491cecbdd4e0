package entity

// Valid values for Task.Priority.
var TaskPriorities = []string{"high", "medium", "low"}

const DefaultTaskPriority = "medium"

type Task struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Text      string `gorm:"not null" json:"text"`
	Completed bool   `gorm:"not null" json:"completed"`
	Priority  string `gorm:"not null;default:medium" json:"priority"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

// TaskFilter narrows a task listing. Zero values mean "no condition";
// Completed is a pointer so that filtering on false is still possible.
type TaskFilter struct {
	Search    string
	Completed *bool
	Priority  string
	Limit     int
	Offset    int
}
