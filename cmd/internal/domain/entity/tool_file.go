package entity

// ToolFile is a file metadata record only; no bytes are stored anywhere.
type ToolFile struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Category  string `gorm:"not null" json:"category"`
	Size      string `gorm:"not null" json:"size"`
	Timestamp string `gorm:"not null" json:"timestamp"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

type ToolFileFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}
