package seed

// File is the top-level structure of the seed YAML file used to
// pre-populate an empty directory.
type File struct {
	Categories []Category `yaml:"categories"`
}

// Category is one directory category in the seed file.
type Category struct {
	Name  string `yaml:"name"`
	Sites []Site `yaml:"sites"`
}

// Site is one curated link in the seed file. Logo accepts either a
// reference string or raw svg markup; mapping normalizes it.
type Site struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Desc    string `yaml:"desc,omitempty"`
	Logo    string `yaml:"logo,omitempty"`
	Private bool   `yaml:"private,omitempty"`
}
