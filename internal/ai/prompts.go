package ai

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/job_description.md
var jobDescriptionPromptRaw string

//go:embed prompts/bid_analysis.md
var bidAnalysisPromptRaw string

//go:embed prompts/matchmaking.md
var matchmakingPromptRaw string

// Parsed once at package init; reused on every gateway call.
var (
	jobDescriptionTemplate = template.Must(template.New("job_description").Parse(jobDescriptionPromptRaw))
	bidAnalysisTemplate    = template.Must(template.New("bid_analysis").Parse(bidAnalysisPromptRaw))
	matchmakingTemplate    = template.Must(template.New("matchmaking").Parse(matchmakingPromptRaw))
)
