package model

// Project holds a portfolio project. Title and Description are the
// French base text used as fallback when an i18n row is missing.
type Project struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image" gorm:"size:1024"`

	// Relations
	I18n         []ProjectI18n `json:"i18n,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Technologies []ProjectTech `json:"technologies,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// ProjectI18n is a per-language override row for a project.
type ProjectI18n struct {
	ProjectID   int    `json:"project_id" gorm:"primaryKey"`
	Lang        string `json:"lang" gorm:"primaryKey;size:2"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (ProjectI18n) TableName() string { return "project_i18n" }

// ProjectTech is one technology tag attached to a project.
type ProjectTech struct {
	ProjectID int    `json:"project_id" gorm:"primaryKey"`
	Tech      string `json:"tech" gorm:"primaryKey;size:255"`
}

func (ProjectTech) TableName() string { return "project_tech" }

// LocalizedProject is the read model returned by the language-aware
// project queries: i18n text coalesced onto the base row.
type LocalizedProject struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
