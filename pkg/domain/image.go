package domain

// Attribution describes who made an image and under which license.
type Attribution struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	License     string `json:"license"`
	LicenseURL  string `json:"license_url"`
	Description string `json:"description"`
	FilePageURL string `json:"file_page_url"`
}

// Image is a resolved photo or logo. Attribution is nil when Commons has no
// metadata for the file.
type Image struct {
	URL         string       `json:"url"`
	FileName    string       `json:"file_name"`
	Attribution *Attribution `json:"attribution,omitempty"`
}
