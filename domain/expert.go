package domain

// Specialties offered in the expert directory filter.
var Specialties = []string{
	"Sanitär",
	"Elektrik",
	"Tischlerei",
	"Malerei",
	"Allgemeiner Handwerker",
}

type Expert struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Specialty    string   `json:"specialty" yaml:"specialty"`
	ProfileImage string   `json:"profileImage" yaml:"profileImage"`
	Rating       float64  `json:"rating" yaml:"rating"`
	RatingCount  int      `json:"ratingCount" yaml:"ratingCount"`
	HourlyRate   int      `json:"hourlyRate" yaml:"hourlyRate"`
	Availability string   `json:"availability" yaml:"availability"`
	Description  string   `json:"description" yaml:"description"`
	Categories   []string `json:"categories" yaml:"categories"`
}

// HasCategory reports an exact match on one of the expert's service categories.
func (e Expert) HasCategory(category string) bool {
	for _, c := range e.Categories {
		if c == category {
			return true
		}
	}
	return false
}
