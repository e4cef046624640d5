package domain

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Einfach"
	DifficultyMedium   Difficulty = "Mittel"
	DifficultyAdvanced Difficulty = "Fortgeschritten"
)

type Step struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	VideoURL    string `json:"videoUrl" yaml:"videoUrl"`
}

// Guide is a static step-by-step instruction ("Anleitung").
type Guide struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Duration    string     `json:"duration" yaml:"duration"`
	Tools       []string   `json:"tools" yaml:"tools"`
	Materials   []string   `json:"materials" yaml:"materials"`
	Category    string     `json:"category" yaml:"category"`
	ImageURL    string     `json:"imageUrl" yaml:"imageUrl"`
	Steps       []Step     `json:"steps" yaml:"steps"`
	Tips        []string   `json:"tips" yaml:"tips"`
}

// GuideSummary is the card shown in search results.
type GuideSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Tools       []string   `json:"tools"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
}

func (g Guide) Summary() GuideSummary {
	return GuideSummary{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Difficulty:  g.Difficulty,
		Tools:       g.Tools,
		Category:    g.Category,
		ImageURL:    g.ImageURL,
	}
}
