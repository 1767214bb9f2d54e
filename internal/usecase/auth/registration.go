package auth

import (
	"strings"

	"github.com/skillforge24/skillforge-backend/internal/domain"
)

// Registration is the tagged union over the two role-specific signup forms.
// Each variant knows how to turn itself into an account record; dispatch is
// on the concrete type, not on shared field shapes.
type Registration interface {
	Role() domain.Role
	Email() string
	Password() string
	newUser() *domain.User
}

// ContributorRegistration is the signup form for job-seeking developers.
type ContributorRegistration struct {
	Name        string `validate:"required,min=2,max=100"`
	EmailAddr   string `validate:"required,email"`
	RawPassword string `validate:"required,min=8,max=72"`
	Skills      string `validate:"max=500"` // comma-separated
	Experience  string `validate:"max=100"`
}

func (r *ContributorRegistration) Role() domain.Role { return domain.RoleContributor }
func (r *ContributorRegistration) Email() string     { return r.EmailAddr }
func (r *ContributorRegistration) Password() string  { return r.RawPassword }

func (r *ContributorRegistration) newUser() *domain.User {
	var experience *string
	if r.Experience != "" {
		experience = &r.Experience
	}
	return &domain.User{
		Email:      strings.ToLower(strings.TrimSpace(r.EmailAddr)),
		Role:       domain.RoleContributor,
		Name:       r.Name,
		Skills:     splitSkills(r.Skills),
		Experience: experience,
	}
}

// HirerRegistration is the signup form for hiring companies.
type HirerRegistration struct {
	CompanyName string `validate:"required,min=2,max=100"`
	EmailAddr   string `validate:"required,email"`
	RawPassword string `validate:"required,min=8,max=72"`
	Industry    string `validate:"max=100"`
	Website     string `validate:"omitempty,url"`
}

func (r *HirerRegistration) Role() domain.Role { return domain.RoleHirer }
func (r *HirerRegistration) Email() string     { return r.EmailAddr }
func (r *HirerRegistration) Password() string  { return r.RawPassword }

func (r *HirerRegistration) newUser() *domain.User {
	var industry, website *string
	if r.Industry != "" {
		industry = &r.Industry
	}
	if r.Website != "" {
		website = &r.Website
	}
	return &domain.User{
		Email:    strings.ToLower(strings.TrimSpace(r.EmailAddr)),
		Role:     domain.RoleHirer,
		Name:     r.CompanyName,
		Industry: industry,
		Website:  website,
	}
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
