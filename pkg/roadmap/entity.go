package roadmap

import "context"

// Expected item counts of a valid roadmap.
const (
	PrerequisitesCount = 5
	MainStepsCount     = 5
	ResourcesCount     = 3
)

// Step is one prerequisite or learning step.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"` // meant to stay under 100 characters, not enforced
}

// Resource is an external learning resource. URL is taken as-is.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Roadmap is the learning plan for one technology.
type Roadmap struct {
	Prerequisites []Step     `json:"prerequisites"`
	MainSteps     []Step     `json:"mainSteps"`
	Resources     []Resource `json:"resources"`
}

// UseCase generates a validated roadmap for a target technology.
type UseCase interface {
	Generate(ctx context.Context, target string) (Roadmap, error)
}
