package models

type IssueModel struct {
	ID          uint    `gorm:"primaryKey"`
	ProjectID   uint    `gorm:"not null;index"`
	Title       string  `gorm:"size:200;not null"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	ReporterID  uint    `gorm:"not null;index"`
	AssigneeID  *uint   `gorm:"index"`
	CreatedAt   int64   `gorm:"not null"`
	UpdatedAt   int64   `gorm:"not null"`
}

func (IssueModel) TableName() string {
	return "issues"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	IssueID   uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "issue_comments"
}
