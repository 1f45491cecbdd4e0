package entity

type CommunityPost struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Author    string `gorm:"not null" json:"author"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	Category  string `gorm:"not null" json:"category"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

type CommunityPostFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}
