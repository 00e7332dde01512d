package portfolio

// Profile captures the identity block shown in the hero, about and contact sections.
type Profile struct {
	Name     string        `json:"name"`
	Stats    []Stat        `json:"stats"`
	Contacts []ContactInfo `json:"contacts"`
	Socials  []SocialLink  `json:"socials"`
}

// Stat 关于页的数字亮点，Label 为 i18n key。
type Stat struct {
	Value    string `json:"value"`
	LabelKey string `json:"labelKey"`
}

// ContactInfo 联系方式条目。
type ContactInfo struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Link    string `json:"link"`
}

// SocialLink 社交平台链接。
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SkillCategory groups skills under one heading.
type SkillCategory struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

// Skill 单项技能及熟练度（0-100）。
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon"`
}

// Project is one entry of the project gallery.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	CodeURL      string   `json:"codeUrl"`
	Category     string   `json:"category"`
}

// Service 提供的服务项目。
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       string   `json:"price,omitempty"`
}

// AllCategories is the gallery filter value that selects every project.
const AllCategories = "All"

// Content bundles everything the site renders.
type Content struct {
	Profile  Profile
	Skills   []SkillCategory
	Projects []Project
	Services []Service
	// ProjectCategories keeps the filter order of the gallery, without "All".
	ProjectCategories []string
}
