package entity

type ToolNote struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	Timestamp string `gorm:"not null" json:"timestamp"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

// ToolNoteFilter searches both the title and content columns.
type ToolNoteFilter struct {
	Search string
	Limit  int
	Offset int
}
