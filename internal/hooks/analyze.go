package hooks

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Veraticus/cc-cleanup/internal/shared"
)

// Analyzer submits a prompt to a remote assistant and returns its reply.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = "Analyze this %s file change for code quality and suggest improvements:\n\nTool Output: %s\nFile: %s"

// BuildPrompt renders the review request for one edited file.
func BuildPrompt(fileType shared.FileType, toolOutput, filePath string) string {
	return fmt.Sprintf(promptTemplate, fileType, toolOutput, filePath)
}

// analyzeFile asks the assistant to review filePath and prints the reply.
// Failures are printed and never returned.
func (r *Runner) analyzeFile(ctx context.Context, filePath, toolOutput string) {
	prompt := BuildPrompt(shared.DetectFileType(filePath), toolOutput, filePath)
	r.logger.Debug("requesting analysis", zap.String("file", filePath), zap.Int("prompt_bytes", len(prompt)))

	analysis, err := r.analyzer.Analyze(ctx, prompt)
	if err != nil {
		_, _ = fmt.Fprintln(r.deps.Stderr, shared.WarningStyle.Render("⚠️  Claude analysis failed:"), err)
		return
	}

	_, _ = fmt.Fprintln(r.deps.Stdout, shared.InfoStyle.Render("🤖 Claude Analysis:"))
	_, _ = fmt.Fprintln(r.deps.Stdout, analysis)
}
