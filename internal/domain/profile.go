package domain

// Role distinguishes job-seeking contributors from hiring companies.
type Role string

const (
	RoleContributor Role = "contributor"
	RoleHirer       Role = "hirer"
)

func (r Role) Valid() bool {
	return r == RoleContributor || r == RoleHirer
}

// Rarity is the badge rarity tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Level is per-profile progression display data. No level-up transition is
// performed anywhere; the whole struct is replaced on update.
type Level struct {
	Current             int `json:"current"`
	Experience          int `json:"experience"`
	NextLevelExperience int `json:"next_level_experience"`
}

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"max_progress"`
	Completed   bool   `json:"completed"`
	Points      int    `json:"points"`
}

// Badge is immutable once granted.
type Badge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Rarity Rarity `json:"rarity"`
}

// Mentoring marks a profile as an available mentor.
type Mentoring struct {
	Available    bool     `json:"available"`
	Expertise    []string `json:"expertise"`
	Rate         int      `json:"rate"`
	Rating       float64  `json:"rating"`
	TotalMentees int      `json:"total_mentees"`
}

// Profile is the per-user record of identity, bio, skills and gamification
// state. ID always equals UserID (one profile per user) and Role is immutable
// after creation.
type Profile struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Role         Role          `json:"role"`
	Name         string        `json:"name"`
	Bio          string        `json:"bio"`
	Avatar       string        `json:"avatar"`
	Location     string        `json:"location"`
	Website      *string       `json:"website,omitempty"`
	GitHub       *string       `json:"github,omitempty"`
	LinkedIn     *string       `json:"linkedin,omitempty"`
	Twitter      *string       `json:"twitter,omitempty"`
	Skills       []string      `json:"skills"`
	Achievements []Achievement `json:"achievements"`
	Badges       []Badge       `json:"badges"`
	Level        Level         `json:"level"`
	Mentoring    *Mentoring    `json:"mentoring,omitempty"`
}

// ProfileUpdate carries the fields of a partial profile update. Nil means
// "leave unchanged"; nested Level and Mentoring are replaced wholesale when
// set, never deep-merged.
type ProfileUpdate struct {
	Name         *string        `json:"name,omitempty"`
	Bio          *string        `json:"bio,omitempty"`
	Avatar       *string        `json:"avatar,omitempty"`
	Location     *string        `json:"location,omitempty"`
	Website      *string        `json:"website,omitempty"`
	GitHub       *string        `json:"github,omitempty"`
	LinkedIn     *string        `json:"linkedin,omitempty"`
	Twitter      *string        `json:"twitter,omitempty"`
	Skills       *[]string      `json:"skills,omitempty"`
	Achievements *[]Achievement `json:"achievements,omitempty"`
	Badges       *[]Badge       `json:"badges,omitempty"`
	Level        *Level         `json:"level,omitempty"`
	Mentoring    *Mentoring     `json:"mentoring,omitempty"`
}

// Apply shallow-merges the set fields of u into p.
func (u *ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Website != nil {
		p.Website = u.Website
	}
	if u.GitHub != nil {
		p.GitHub = u.GitHub
	}
	if u.LinkedIn != nil {
		p.LinkedIn = u.LinkedIn
	}
	if u.Twitter != nil {
		p.Twitter = u.Twitter
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Achievements != nil {
		p.Achievements = *u.Achievements
	}
	if u.Badges != nil {
		p.Badges = *u.Badges
	}
	if u.Level != nil {
		p.Level = *u.Level
	}
	if u.Mentoring != nil {
		p.Mentoring = u.Mentoring
	}
}
