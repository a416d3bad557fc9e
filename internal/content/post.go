package content

// Post is a single blog entry. Every field is a display string; Date and
// Views are not guaranteed to be machine-readable.
type Post struct {
	Slug     string `json:"slug" yaml:"slug"`
	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Content  string `json:"content" yaml:"-"`
	Category string `json:"category" yaml:"category"`
	Date     string `json:"date" yaml:"date"`
	ReadTime string `json:"readTime" yaml:"read_time"`
	Views    string `json:"views" yaml:"views"`
	Author   string `json:"author" yaml:"author"`
}

// Page is a standalone markdown page such as About or Contact.
type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}
