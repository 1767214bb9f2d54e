package catalog

import (
	"strings"
	"time"

	"github.com/skillforge24/skillforge-backend/internal/domain"
)

// CatalogUseCase serves the public browsing data: projects, challenges and
// featured contributors. Everything is seeded and read-only.
type CatalogUseCase struct {
	projects     []domain.Project
	challenges   []domain.Challenge
	contributors []domain.Contributor
	now          func() time.Time
}

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{
		projects:     seedProjects(),
		challenges:   seedChallenges(),
		contributors: seedContributors(),
		now:          time.Now,
	}
}

// ChallengeView is a challenge plus its computed days-remaining.
type ChallengeView struct {
	domain.Challenge
	DaysRemaining int `json:"days_remaining"`
}

// Projects returns projects matching the query (title, description, author)
// and category. Empty filters match everything.
func (uc *CatalogUseCase) Projects(query, category string) []domain.Project {
	q := strings.ToLower(query)
	out := []domain.Project{}
	for _, p := range uc.projects {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if q != "" && !containsFold(q, p.Title, p.Description, p.Author) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Challenges returns challenges matching the query and difficulty, each with
// days remaining until its deadline (negative once passed).
func (uc *CatalogUseCase) Challenges(query, difficulty string) []ChallengeView {
	q := strings.ToLower(query)
	out := []ChallengeView{}
	for _, c := range uc.challenges {
		if difficulty != "" && !strings.EqualFold(c.Difficulty, difficulty) {
			continue
		}
		if q != "" && !containsFold(q, c.Title, c.Description, c.Company) {
			continue
		}
		out = append(out, ChallengeView{Challenge: c, DaysRemaining: uc.daysRemaining(c.Deadline)})
	}
	return out
}

// Contributors returns contributors matching the query (name, title, bio or
// any skill).
func (uc *CatalogUseCase) Contributors(query string) []domain.Contributor {
	q := strings.ToLower(query)
	out := []domain.Contributor{}
	for _, c := range uc.contributors {
		if q != "" && !containsFold(q, append([]string{c.Name, c.Title, c.Bio}, c.Skills...)...) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// daysRemaining rounds partial days up, matching the original page's ceil.
func (uc *CatalogUseCase) daysRemaining(deadline string) int {
	d, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return 0
	}
	diff := d.Sub(uc.now())
	days := int(diff / (24 * time.Hour))
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
