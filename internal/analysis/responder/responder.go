package responder

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category 表示助手可以给出的固定回答类别。
type Category string

const (
	Skills     Category = "skills"
	Projects   Category = "projects"
	Experience Category = "experience"
	Contact    Category = "contact"
	Services   Category = "services"
	Default    Category = "default"
)

type rule struct {
	category Category
	keywords []string
}

// rules are evaluated top to bottom; the first rule with a matching keyword wins.
var rules = []rule{
	{category: Skills, keywords: []string{"skill", "technology", "tech"}},
	{category: Projects, keywords: []string{"project", "work", "portfolio"}},
	{category: Experience, keywords: []string{"experience", "background", "career"}},
	{category: Contact, keywords: []string{"contact", "hire", "email"}},
	{category: Services, keywords: []string{"service", "offer", "help"}},
}

var replies = map[Category]string{
	Skills:     "Mohamed specializes in React, Node.js, TypeScript, PHP, and cloud technologies. He's particularly skilled in building responsive web applications with modern UI frameworks and has extensive experience with AWS and Docker deployment.",
	Projects:   "Mohamed has worked on 50+ projects including e-commerce platforms, SaaS applications, mobile apps, and AI-powered tools. His portfolio showcases full-stack applications with modern design and robust functionality.",
	Experience: "With 3+ years of professional development experience, Mohamed has worked with startups and established companies, delivering high-quality solutions and maintaining 100% client satisfaction.",
	Contact:    "You can contact Mohamed through the contact form on this website, or connect with him on LinkedIn. He's always open to discussing new opportunities and collaborations!",
	Services:   "Mohamed offers full-stack development, UI/UX design, mobile app development, cloud deployment, and technical consulting. He can help bring your ideas to life with modern, scalable solutions.",
	Default:    "That's a great question! Mohamed is passionate about creating innovative digital solutions. Feel free to explore his portfolio, check out his projects, or use the contact form to get in touch directly. Is there something specific you'd like to know about his work or experience?",
}

// Select 根据访客消息中的关键词选择回答类别。
func Select(message string) Category {
	// Full case mapping: "İ" lowers to "i\u0307", not "i".
	normalized := cases.Lower(language.Und).String(message)
	for _, r := range rules {
		for _, word := range r.keywords {
			if strings.Contains(normalized, word) {
				return r.category
			}
		}
	}
	return Default
}

// Reply returns the canned answer for a category.
func Reply(c Category) string {
	if text, ok := replies[c]; ok {
		return text
	}
	return replies[Default]
}

// Categories lists every category in rule order, ending with Default.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, Default)
}
