package model

// Well-known page names produced by the default site layout.
const (
	PageIndex  = "index"
	PageResume = "resume"
)

// Page describes a single rendered output: the template that produces it
// and the file name it is written to.
type Page struct {
	Name     string
	Template string
	Output   string
}

// DefaultPages returns the standard portfolio layout: a landing page and a
// resume page, each backed by its own template.
func DefaultPages() []Page {
	return []Page{
		{Name: PageIndex, Template: "index_template.html", Output: "index.html"},
		{Name: PageResume, Template: "resume_template.html", Output: "resume.html"},
	}
}
