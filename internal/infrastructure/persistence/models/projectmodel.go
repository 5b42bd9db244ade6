package models

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:120;not null"`
	Key         string `gorm:"uniqueIndex;size:20;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// MemberModel keys on the (project, user) pair: one role per pair.
type MemberModel struct {
	ProjectID uint   `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Role      string `gorm:"size:20;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (MemberModel) TableName() string {
	return "project_members"
}
