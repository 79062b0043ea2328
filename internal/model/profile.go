package model

// Profile is the singleton owner record, always stored under id 1.
// Title and Description hold the French base text; translated text
// lives in ProfileI18n.
type Profile struct {
	ID                  int     `json:"id" gorm:"primaryKey"`
	Name                string  `json:"name" gorm:"size:255;not null"`
	Title               string  `json:"title" gorm:"size:255;not null"`
	Email               string  `json:"email" gorm:"size:255;not null"`
	Phone               string  `json:"phone" gorm:"size:50"`
	Location            string  `json:"location" gorm:"size:255"`
	Description         string  `json:"description" gorm:"type:text"`
	ExperienceStartYear *int    `json:"experience_start_year"`

	// Relations
	I18n []ProfileI18n `json:"i18n,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the singleton table singular.
func (Profile) TableName() string { return "profile" }

// ProfileI18n is a per-language override row for the profile.
type ProfileI18n struct {
	ProfileID   int    `json:"profile_id" gorm:"primaryKey"`
	Lang        string `json:"lang" gorm:"primaryKey;size:2"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (ProfileI18n) TableName() string { return "profile_i18n" }

// Social is the singleton social-links record, stored under id 1.
type Social struct {
	ID       int    `json:"-" gorm:"primaryKey"`
	Github   string `json:"github" gorm:"type:text"`
	Linkedin string `json:"linkedin" gorm:"type:text"`
}

func (Social) TableName() string { return "social" }
