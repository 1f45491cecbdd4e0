package entity

type Bookmark struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	URL       string `gorm:"not null;column:url" json:"url"`
	Category  string `gorm:"not null" json:"category"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

type BookmarkFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}
