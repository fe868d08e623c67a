// analyzer.go
//
// Optional OpenAI-backed refinement. The analyzer degrades to the local
// transforms when no key is configured or the API call fails, so the feature
// never blocks a save.

package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/goldtek/quotetrack/internal/config"
	"github.com/goldtek/quotetrack/internal/project"
	openai "github.com/sashabaranov/go-openai"
)

// Analyzer refines notes and produces project commentary.
type Analyzer struct {
	client *openai.Client
	model  string
}

// New builds an Analyzer. With no API key configured the analyzer runs the
// local transforms only.
func New(cfg *config.Config) *Analyzer {
	a := &Analyzer{model: cfg.OpenAIModel}
	if cfg.OpenAIKey != "" {
		a.client = openai.NewClient(cfg.OpenAIKey)
	}
	return a
}

// RefineNote rewrites a revision note into a clean one-liner.
func (a *Analyzer) RefineNote(ctx context.Context, note string) string {
	local := RefineNote(note)
	if a.client == nil || local == "" {
		return local
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You polish one-line revision notes for switchgear quotations. Return only the revised note, same language as the input, no commentary.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: local,
			},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			log.Printf("Note refinement fell back to local transform: %v", err)
		}
		return local
	}

	refined := strings.TrimSpace(resp.Choices[0].Message.Content)
	if refined == "" {
		return local
	}
	return refined
}

// AnalyzeProject returns margin commentary, AI-written when available.
func (a *Analyzer) AnalyzeProject(ctx context.Context, p project.Project) string {
	local := AnalyzeProject(p)
	if a.client == nil {
		return local
	}

	prompt := local + "\n\nSummarize the risks and give three lines of advice for the sales engineer."
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			log.Printf("Project analysis fell back to local summary: %v", err)
		}
		return local
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
