package model

// Experience is one timeline entry. EndYear nil means ongoing.
type Experience struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	StartYear   int    `json:"start_year" gorm:"not null"`
	EndYear     *int   `json:"end_year"`
	Title       string `json:"title" gorm:"size:255;default:''"`
	Subtitle    string `json:"subtitle" gorm:"size:255;default:''"`
	Description string `json:"description" gorm:"type:text"`

	// Relations
	I18n []ExperienceI18n `json:"i18n,omitempty" gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE"`
}

// ExperienceI18n is a per-language override row for an experience.
type ExperienceI18n struct {
	ExperienceID int    `json:"experience_id" gorm:"primaryKey"`
	Lang         string `json:"lang" gorm:"primaryKey;size:2"`
	Title        string `json:"title" gorm:"size:255;default:''"`
	Subtitle     string `json:"subtitle" gorm:"size:255;default:''"`
	Description  string `json:"description" gorm:"type:text"`
}

func (ExperienceI18n) TableName() string { return "experience_i18n" }

// LocalizedExperience is the read model for language-aware experience
// queries, with i18n text coalesced onto the base row.
type LocalizedExperience struct {
	ID          int    `json:"id"`
	StartYear   int    `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}
