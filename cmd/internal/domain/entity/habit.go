package entity

type Habit struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Streak       int    `gorm:"not null" json:"streak"`
	CheckedToday bool   `gorm:"not null" json:"checkedToday"`
	CreatedAt    string `gorm:"not null" json:"createdAt"`
}

type HabitFilter struct {
	Search string
	Limit  int
	Offset int
}
