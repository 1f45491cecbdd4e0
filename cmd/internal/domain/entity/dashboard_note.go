package entity

// DashboardNote is the small sticky-note widget on the dashboard page.
type DashboardNote struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"not null" json:"content"`
	Timestamp string `gorm:"not null" json:"timestamp"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

type DashboardNoteFilter struct {
	Search string
	Limit  int
	Offset int
}
