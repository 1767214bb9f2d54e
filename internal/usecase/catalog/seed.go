package catalog

import "github.com/skillforge24/skillforge-backend/internal/domain"

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:           1,
			Title:        "AI-Powered Task Manager",
			Description:  "A smart task management application that uses AI to prioritize and categorize tasks automatically.",
			Image:        "https://images.pexels.com/photos/546819/pexels-photo-546819.jpeg",
			Author:       "Sarah Chen",
			AuthorImage:  "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			Technologies: []string{"React", "Python", "TensorFlow"},
			Likes:        245,
			Views:        "1.2k",
			Category:     "AI/ML",
		},
		{
			ID:           2,
			Title:        "Sustainable Energy Dashboard",
			Description:  "Real-time monitoring dashboard for renewable energy sources with predictive analytics.",
			Image:        "https://images.pexels.com/photos/159397/solar-panel-array-power-sun-electricity-159397.jpeg",
			Author:       "Michael Rodriguez",
			AuthorImage:  "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			Technologies: []string{"Vue.js", "D3.js", "Node.js"},
			Likes:        189,
			Views:        "856",
			Category:     "Data Visualization",
		},
		{
			ID:           3,
			Title:        "Blockchain Voting System",
			Description:  "Secure and transparent voting system built on blockchain technology.",
			Image:        "https://images.pexels.com/photos/8370752/pexels-photo-8370752.jpeg",
			Author:       "Alex Johnson",
			AuthorImage:  "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg",
			Technologies: []string{"Solidity", "Ethereum", "Web3.js"},
			Likes:        312,
			Views:        "1.5k",
			Category:     "Blockchain",
		},
	}
}

func seedChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:              1,
			Title:           "Build a Real-time Chat Application",
			Company:         "TechCorp Solutions",
			CompanyLogo:     "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg",
			Description:     "Create a scalable real-time chat application using WebSocket technology.",
			Prize:           "$1,000",
			Deadline:        "2024-05-15",
			Participants:    45,
			MaxParticipants: 100,
			Difficulty:      "Intermediate",
			Skills:          []string{"React", "Node.js", "WebSocket"},
			Status:          "active",
		},
		{
			ID:              2,
			Title:           "Design an Accessible Dashboard",
			Company:         "DesignHub",
			CompanyLogo:     "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg",
			Description:     "Design and implement an accessible dashboard following WCAG guidelines.",
			Prize:           "$750",
			Deadline:        "2024-05-20",
			Participants:    32,
			MaxParticipants: 50,
			Difficulty:      "Advanced",
			Skills:          []string{"UI/UX", "React", "Accessibility"},
			Status:          "active",
		},
		{
			ID:              3,
			Title:           "Optimize E-commerce Performance",
			Company:         "ShopTech Inc",
			CompanyLogo:     "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg",
			Description:     "Improve the performance of an e-commerce website focusing on Core Web Vitals.",
			Prize:           "$1,500",
			Deadline:        "2024-05-25",
			Participants:    28,
			MaxParticipants: 75,
			Difficulty:      "Expert",
			Skills:          []string{"Performance", "Next.js", "Web Vitals"},
			Status:          "active",
		},
	}
}

func seedContributors() []domain.Contributor {
	return []domain.Contributor{
		{
			ID:           1,
			Name:         "Sarah Chen",
			Title:        "Full Stack Developer",
			Location:     "San Francisco, CA",
			Avatar:       "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			Bio:          "Passionate about building scalable web applications and mentoring junior developers.",
			Experience:   "5 years",
			Rating:       4.9,
			Reviews:      28,
			Skills:       []string{"React", "Node.js", "Python", "AWS"},
			Availability: "Open to opportunities",
			Featured:     true,
		},
		{
			ID:           2,
			Name:         "Michael Rodriguez",
			Title:        "Frontend Developer",
			Location:     "Remote",
			Avatar:       "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			Bio:          "Specializing in creating beautiful and accessible user interfaces.",
			Experience:   "3 years",
			Rating:       4.7,
			Reviews:      15,
			Skills:       []string{"React", "TypeScript", "Tailwind CSS", "Next.js"},
			Availability: "Available for freelance",
			Featured:     false,
		},
		{
			ID:           3,
			Name:         "Emily Johnson",
			Title:        "UI/UX Designer",
			Location:     "London, UK",
			Avatar:       "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			Bio:          "Creating user-centered designs with a focus on accessibility and inclusivity.",
			Experience:   "4 years",
			Rating:       4.8,
			Reviews:      22,
			Skills:       []string{"Figma", "Adobe XD", "User Research", "Prototyping"},
			Availability: "Open to full-time",
			Featured:     true,
		},
	}
}
