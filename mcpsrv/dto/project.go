package dto

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Details     Details  `json:"details"`
}

type Details struct {
	Client   string   `json:"client"`
	Duration string   `json:"duration"`
	Location string   `json:"location"`
	Services []string `json:"services"`
}

type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
