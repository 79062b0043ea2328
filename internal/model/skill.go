package model

// Skill is a named skill with a 0-100 proficiency level.
type Skill struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Level int    `json:"level" gorm:"not null"`
}

// SkillCategory groups skills for display; Position drives ordering.
type SkillCategory struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"size:255;not null"`
	Icon     *string `json:"icon" gorm:"size:255"`
	Position int     `json:"position" gorm:"not null;default:0"`
}

func (SkillCategory) TableName() string { return "skill_categories" }

// SkillCategoryMap is the skill/category join table. Rows cascade
// away with either parent.
type SkillCategoryMap struct {
	SkillID    int `json:"skill_id" gorm:"primaryKey"`
	CategoryID int `json:"category_id" gorm:"primaryKey"`

	Skill    Skill         `json:"-" gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
	Category SkillCategory `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (SkillCategoryMap) TableName() string { return "skill_category_map" }
