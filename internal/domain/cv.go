package domain

// CVInput is the raw user-provided material the model rewrites into a
// structured CV. All fields are free text.
type CVInput struct {
	Name        string
	TargetTitle string
	Contact     string
	Profile     string
	Education   string
	Skills      string
	Experience  string
	Projects    string
	Languages   string
	Interests   string
}

// CVHeader is the identity block at the top of a CV.
type CVHeader struct {
	FullName string
	Title    string
	Contact  string
}

// CVExperience is one position in the experience section.
type CVExperience struct {
	Title   string
	Company string
	Dates   string
	Bullets []string
}

// CV is the guaranteed output shape of the structured CV pipeline. Every
// field is present even when the model omitted or mangled it.
type CV struct {
	Header     CVHeader
	Profile    string
	Education  []string
	Skills     []string
	Experience []CVExperience
	Projects   []string
	Languages  []string
	Interests  []string
}
