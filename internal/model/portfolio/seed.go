package portfolio

// Seed provides the content published on the portfolio page.
func Seed() Content {
	return Content{
		Profile: Profile{
			Name: "Mohamed",
			Stats: []Stat{
				{Value: "50+", LabelKey: "about.stats.projects"},
				{Value: "3+", LabelKey: "about.stats.experience"},
				{Value: "100%", LabelKey: "about.stats.satisfaction"},
				{Value: "24/7", LabelKey: "about.stats.support"},
			},
			Contacts: []ContactInfo{
				{Title: "Email", Content: "gueyemohamed287@gmail.com", Link: "mailto:gueyemohamed287@gmail.com"},
				{Title: "Phone", Content: "+221 78 011 82 23", Link: "tel:+221780118223"},
				{Title: "Location", Content: "DAKAR, SENEGAL", Link: "#"},
			},
			Socials: []SocialLink{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/mohamed-gueye-864237234/"},
				{Name: "GitHub", URL: "https://github.com/mgdigi"},
			},
		},
		Skills: []SkillCategory{
			{Title: "Frontend", Skills: []Skill{
				{Name: "React/Next.js", Level: 95, Icon: "⚛️"},
				{Name: "Angular/TypeScript", Level: 95, Icon: "🔷"},
				{Name: "Tailwind CSS", Level: 95, Icon: "🎨"},
				{Name: "Framer Motion", Level: 85, Icon: "🎭"},
			}},
			{Title: "Backend", Skills: []Skill{
				{Name: "Node.js/Rust/Go", Level: 95, Icon: "💚"},
				{Name: "PHP/Java", Level: 95, Icon: "🐘"},
				{Name: "PostgreSQL/MySql", Level: 95, Icon: "🐘"},
				{Name: "GraphQL/MongoDB", Level: 90, Icon: "🔗"},
			}},
			{Title: "DevOps", Skills: []Skill{
				{Name: "AWS", Level: 85, Icon: "☁️"},
				{Name: "Docker", Level: 95, Icon: "🐳"},
				{Name: "CI/CD", Level: 85, Icon: "🔄"},
				{Name: "Kubernetes", Level: 75, Icon: "⚓"},
			}},
			{Title: "Mobile", Skills: []Skill{
				{Name: "React Native", Level: 88, Icon: "📱"},
				{Name: "Flutter", Level: 90, Icon: "🦋"},
				{Name: "Expo", Level: 90, Icon: "🚀"},
				{Name: "App Store", Level: 85, Icon: "🏪"},
			}},
			{Title: "Tools", Skills: []Skill{
				{Name: "Git", Level: 95, Icon: "🌿"},
				{Name: "VS Code", Level: 98, Icon: "💻"},
				{Name: "Figma", Level: 85, Icon: "🎨"},
				{Name: "Postman", Level: 90, Icon: "📮"},
			}},
			{Title: "Languages", Skills: []Skill{
				{Name: "JavaScript", Level: 95, Icon: "🟨"},
				{Name: "TypeScript", Level: 90, Icon: "🔷"},
				{Name: "PHP", Level: 85, Icon: "🐘"},
				{Name: "Java", Level: 78, Icon: "☕"},
			}},
		},
		Projects: []Project{
			{
				ID:           1,
				Title:        "Cargo Management System",
				Description:  "Web application for managing and tracking cargo shipments. Features include route planning for road and maritime transport, real-time map visualization with Leaflet, PDF document generation, and management of shippers and consignees.",
				Image:        "/images/ges-cargo.png",
				Technologies: []string{"TypeScript", "Leaflet", "OpenRouteService API", "HTML/CSS", "Json-server", "LocalStorage", "Vite", "Docker"},
				DemoURL:      "https://mgdigigp.onrender.com/",
				CodeURL:      "#",
				Category:     "Full Stack",
			},
			{
				ID:           2,
				Title:        "Maxit-sa",
				Description:  "Complete financial services platform, from modeling to deployment! with pur PHP .",
				Image:        "/images/maxit-sa.jpeg",
				Technologies: []string{"PHP", "Typescript", "PostgresSQL", "MySql", "cloudinary", "Render", "Docker"},
				DemoURL:      "https://maxitsa-knvs.onrender.com/",
				CodeURL:      "#",
				Category:     "FinTech",
			},
			{
				ID:           3,
				Title:        "whatsapp clone App",
				Description:  "complete application that replicates core WhatsApp functionalities, including real-time messaging, multimedia sharing, and push notifications.",
				Image:        "/images/whatspp-clone.png",
				Technologies: []string{"Javascript", "Tailwind", "Superbase", "Socket.io", "Vite", "Vercel", "Docker"},
				DemoURL:      "https://whatspp-clone-1x74o82ih-gueyes-projects.vercel.app/",
				CodeURL:      "#",
				Category:     "Full Stack",
			},
			{
				ID:           4,
				Title:        "Stock Flow",
				Description:  "inventory project management tool with real-time updates, team collaboration features, and advanced reporting capabilities.",
				Image:        "/images/prostock.png",
				Technologies: []string{"Typescript", "chart.js", "tailwind css", "Vue.js", "Express", "Socket.io", "MongoDb", "Docker"},
				DemoURL:      "#",
				CodeURL:      "https://pro-stock-seven.vercel.app/",
				Category:     "SaaS",
			},
			{
				ID:           5,
				Title:        "Yaatou Market",
				Description:  "An e-commerce website built with WordPress and WooCommerce, specializing in selling household appliances, electronics, clothing, kitchenware, and home essentials. Designed with a modern, responsive layout and optimized for SEO and user experience.",
				Image:        "/images/yaatoumarket.png",
				Technologies: []string{"PHP", "Wordpress", "Elementor", "Woodmart", "Woocommerce", "OVHCLOUD", "Seo", "paytech"},
				DemoURL:      "#",
				CodeURL:      "https://yaatoumarket.sn/",
				Category:     "CMS",
			},
			{
				ID:           6,
				Title:        "Ets Madina Gounass",
				Description:  "An e-commerce website built with WordPress and WooCommerce, specializing in selling household electronics. Designed with a modern, responsive layout and optimized for SEO and user experience.",
				Image:        "/images/ets.png",
				Technologies: []string{"PHP", "Wordpress", "Elementor", "Woodmart", "Woocommerce", "OVHCLOUD", "Seo", "paytech"},
				DemoURL:      "https://etsmadinagounass.com/",
				CodeURL:      "#",
				Category:     "CMS",
			},
		},
		ProjectCategories: []string{"Full Stack", "CMS", "SaaS", "FinTech"},
		Services: []Service{
			{
				Title:       "Web Development",
				Description: "Modern, responsive websites and web applications built with cutting-edge technologies.",
				Features:    []string{"React/Next.js Applications", "Responsive Design", "Performance Optimization", "SEO Implementation"},
				Price:       "Starting at $2,500",
			},
			{
				Title:       "Mobile Development",
				Description: "Cross-platform mobile applications that deliver native performance and user experience.",
				Features:    []string{"React Native Apps", "iOS & Android", "App Store Deployment", "Push Notifications"},
			},
			{
				Title:       "Full Stack Development",
				Description: "End-to-end development solutions from database design to user interface.",
				Features:    []string{"API Development", "Database Design", "Authentication Systems", "Third-party Integrations"},
			},
			{
				Title:       "Cloud Solutions",
				Description: "Scalable cloud infrastructure and deployment solutions for modern applications.",
				Features:    []string{"AWS/Azure Deployment", "CI/CD Pipelines", "Auto-scaling Setup", "Security Implementation"},
				Price:       "Starting at $2,000",
			},
			{
				Title:       "System Architecture",
				Description: "Design and implementation of robust, scalable system architectures.",
				Features:    []string{"Microservices Design", "Performance Optimization", "Code Review & Refactoring", "Technical Documentation"},
			},
			{
				Title:       "Technical Consulting",
				Description: "Expert guidance on technology choices, best practices, and project strategy.",
				Features:    []string{"Technology Assessment", "Architecture Planning", "Team Training", "Code Auditing"},
			},
		},
	}
}
