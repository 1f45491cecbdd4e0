package entity

type ContactSubmission struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Subject   string `gorm:"not null" json:"subject"`
	Message   string `gorm:"not null" json:"message"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

// ContactSubmissionFilter searches name, email and subject.
type ContactSubmissionFilter struct {
	Search string
	Limit  int
	Offset int
}
