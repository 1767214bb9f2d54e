package store

import "github.com/skillforge24/skillforge-backend/internal/domain"

func strptr(s string) *string { return &s }

// SeedState returns the initial demo data the store starts from on a fresh
// deployment. A persisted snapshot, when present, replaces it entirely.
func SeedState() *State {
	return &State{
		Profiles: map[string]domain.Profile{
			"1": {
				ID:       "1",
				UserID:   "1",
				Role:     domain.RoleContributor,
				Name:     "John Doe",
				Bio:      "Full-stack developer passionate about building great products",
				Avatar:   "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
				Location: "San Francisco, CA",
				GitHub:   strptr("johndoe"),
				LinkedIn: strptr("johndoe"),
				Skills:   []string{"React", "Node.js", "TypeScript"},
				Achievements: []domain.Achievement{
					{
						ID:          "first-project",
						Name:        "First Project",
						Description: "Upload your first project",
						Icon:        "🚀",
						Progress:    1,
						MaxProgress: 1,
						Completed:   true,
						Points:      100,
					},
				},
				Badges: []domain.Badge{
					{ID: "early-adopter", Name: "Early Adopter", Icon: "⭐", Rarity: domain.RarityRare},
				},
				Level: domain.Level{Current: 5, Experience: 550, NextLevelExperience: 1000},
			},
			"2": {
				ID:       "2",
				UserID:   "2",
				Role:     domain.RoleHirer,
				Name:     "TechCorp",
				Bio:      "Leading technology company building the future",
				Avatar:   "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg",
				Location: "New York, NY",
				Website:  strptr("https://techcorp.com"),
				LinkedIn: strptr("techcorp"),
				Skills:   []string{"Technical Leadership", "Project Management"},
				Achievements: []domain.Achievement{
					{
						ID:          "first-hire",
						Name:        "First Hire",
						Description: "Make your first hire through the platform",
						Icon:        "🎯",
						Progress:    1,
						MaxProgress: 1,
						Completed:   true,
						Points:      100,
					},
				},
				Badges: []domain.Badge{
					{ID: "top-hirer", Name: "Top Hirer", Icon: "🏆", Rarity: domain.RarityEpic},
				},
				Level: domain.Level{Current: 3, Experience: 350, NextLevelExperience: 500},
				Mentoring: &domain.Mentoring{
					Available:    true,
					Expertise:    []string{"Web Development", "Career Growth"},
					Rate:         0,
					Rating:       4.8,
					TotalMentees: 12,
				},
			},
		},
		MentorshipRequests: nil,
	}
}
