package portfolio

import "strings"

// Store exposes portfolio content for HTTP handlers.
type Store interface {
	Profile() Profile
	Skills() []SkillCategory
	Projects(category string) []Project
	ProjectCategories() []string
	FindProject(id int) (Project, bool)
	Services() []Service
}

// MemoryStore implements Store over a fixed Content value.
type MemoryStore struct {
	content Content
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied content.
func NewMemoryStore(content Content) *MemoryStore {
	return &MemoryStore{content: content}
}

// Profile returns the identity block.
func (s *MemoryStore) Profile() Profile {
	p := s.content.Profile
	p.Stats = append([]Stat(nil), p.Stats...)
	p.Contacts = append([]ContactInfo(nil), p.Contacts...)
	p.Socials = append([]SocialLink(nil), p.Socials...)
	return p
}

// Skills returns every skill category.
func (s *MemoryStore) Skills() []SkillCategory {
	out := make([]SkillCategory, len(s.content.Skills))
	for i, c := range s.content.Skills {
		c.Skills = append([]Skill(nil), c.Skills...)
		out[i] = c
	}
	return out
}

// Projects 按类别过滤项目；空值或 "All" 返回全部。
func (s *MemoryStore) Projects(category string) []Project {
	category = strings.TrimSpace(category)
	all := category == "" || strings.EqualFold(category, AllCategories)

	out := make([]Project, 0, len(s.content.Projects))
	for _, p := range s.content.Projects {
		if all || strings.EqualFold(p.Category, category) {
			out = append(out, copyProject(p))
		}
	}
	return out
}

// ProjectCategories returns the gallery filters, "All" first.
func (s *MemoryStore) ProjectCategories() []string {
	return append([]string{AllCategories}, s.content.ProjectCategories...)
}

// FindProject looks up a project by identifier.
func (s *MemoryStore) FindProject(id int) (Project, bool) {
	for _, p := range s.content.Projects {
		if p.ID == id {
			return copyProject(p), true
		}
	}
	return Project{}, false
}

// Services returns the service offering.
func (s *MemoryStore) Services() []Service {
	out := make([]Service, len(s.content.Services))
	for i, svc := range s.content.Services {
		svc.Features = append([]string(nil), svc.Features...)
		out[i] = svc
	}
	return out
}

func copyProject(p Project) Project {
	p.Technologies = append([]string(nil), p.Technologies...)
	return p
}
