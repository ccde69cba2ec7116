package models

// Risk is one advisory risk returned by the suggestion gateway. Nothing
// here is persisted by the core.
type Risk struct {
	RiskName             string   `json:"riskName"`
	RiskDescription      string   `json:"riskDescription"`
	RiskLikelihood       string   `json:"riskLikelihood"`
	RiskImpact           string   `json:"riskImpact"`
	MitigationStrategies []string `json:"mitigationStrategies"`
	RelevantFactors      []string `json:"relevantFactors"`
}

// RiskSuggestionRequest is the structured project-attributes payload the
// gateway accepts.
type RiskSuggestionRequest struct {
	ProjectDescription  string `json:"projectDescription"`
	ProjectType         string `json:"projectType"`
	ProjectTimeline     string `json:"projectTimeline"`
	ProjectBudget       string `json:"projectBudget"`
	ProjectTeamSkills   string `json:"projectTeamSkills"`
	ProjectDependencies string `json:"projectDependencies"`
	ProjectAssumptions  string `json:"projectAssumptions"`
	RiskAppetite        string `json:"riskAppetite"`
}

// RiskSuggestionResponse is the gateway's reply envelope.
type RiskSuggestionResponse struct {
	Risks []Risk `json:"risks"`
}
