package domain

// Catalog entities backing the public browsing endpoints. They are served
// from seed data and are read-only.

type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Author       string   `json:"author"`
	AuthorImage  string   `json:"author_image"`
	Technologies []string `json:"technologies"`
	Likes        int      `json:"likes"`
	Views        string   `json:"views"`
	Category     string   `json:"category"`
}

type Challenge struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	CompanyLogo     string   `json:"company_logo"`
	Description     string   `json:"description"`
	Prize           string   `json:"prize"`
	Deadline        string   `json:"deadline"` // YYYY-MM-DD
	Participants    int      `json:"participants"`
	MaxParticipants int      `json:"max_participants"`
	Difficulty      string   `json:"difficulty"`
	Skills          []string `json:"skills"`
	Status          string   `json:"status"`
}

type Contributor struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Avatar       string   `json:"avatar"`
	Bio          string   `json:"bio"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Featured     bool     `json:"featured"`
}
