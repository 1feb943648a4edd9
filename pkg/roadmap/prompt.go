package roadmap

import "fmt"

const promptTemplate = `
Generate a concise learning roadmap for %s. Include exactly %d prerequisites, %d main steps, and %d resources.
Respond ONLY with a JSON object in the following exact format, with no additional text, explanation, or markdown formatting:

{
  "prerequisites": [
    {"title": "Prerequisite 1", "description": "Brief description of prerequisite 1"},
    {"title": "Prerequisite 2", "description": "Brief description of prerequisite 2"},
    {"title": "Prerequisite 3", "description": "Brief description of prerequisite 3"},
    {"title": "Prerequisite 4", "description": "Brief description of prerequisite 4"},
    {"title": "Prerequisite 5", "description": "Brief description of prerequisite 5"}
  ],
  "mainSteps": [
    {"title": "Step 1", "description": "Brief description of step 1"},
    {"title": "Step 2", "description": "Brief description of step 2"},
    {"title": "Step 3", "description": "Brief description of step 3"},
    {"title": "Step 4", "description": "Brief description of step 4"},
    {"title": "Step 5", "description": "Brief description of step 5"}
  ],
  "resources": [
    {"title": "Resource 1", "url": "https://example.com/resource1"},
    {"title": "Resource 2", "url": "https://example.com/resource2"},
    {"title": "Resource 3", "url": "https://example.com/resource3"}
  ]
}

Ensure all descriptions are under 100 characters. Provide real, relevant URLs for resources. Do not use markdown code blocks or any formatting.
`

// BuildPrompt renders the user prompt asking for a roadmap of target.
// target is embedded verbatim.
func BuildPrompt(target string) string {
	return fmt.Sprintf(promptTemplate, target, PrerequisitesCount, MainStepsCount, ResourcesCount)
}
