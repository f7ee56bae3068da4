package content

// Page is the copy behind one navigation destination
type Page struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Subtitle string    `yaml:"subtitle" json:"subtitle,omitempty"`
	Sections []Section `yaml:"sections" json:"sections,omitempty"`
	Projects []Project `yaml:"projects" json:"projects,omitempty"`
	Links    []Link    `yaml:"links" json:"links,omitempty"`
	Footer   string    `yaml:"footer" json:"footer,omitempty"`
}

// Section is a headed block of prose, a list, or both
type Section struct {
	Heading string   `yaml:"heading" json:"heading"`
	Body    string   `yaml:"body" json:"body,omitempty"`
	Items   []string `yaml:"items" json:"items,omitempty"`

	// Color is the card accent as #RRGGBB, empty for the default
	Color string `yaml:"color" json:"color,omitempty"`
}

// Project is one portfolio card
type Project struct {
	ID              int      `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Category        string   `yaml:"category" json:"category"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"long_description" json:"longDescription"`
	TechStack       []string `yaml:"tech_stack" json:"techStack"`
	GithubURL       string   `yaml:"github_url" json:"githubUrl"`
	LiveURL         string   `yaml:"live_url" json:"liveUrl"`
	Featured        bool     `yaml:"featured" json:"featured"`
}

// Link is an outbound contact link
type Link struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}
