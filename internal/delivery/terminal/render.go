package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/quiz-runner/internal/service"
)

const separator = "----------------------------------------"

// renderView draws v as plain text.
func renderView(v service.View) string {
	var sb strings.Builder

	sb.WriteString(separator)
	sb.WriteString("\n")

	if v.Status != "" {
		sb.WriteString(v.Status)
		sb.WriteString("\n")
	}
	if v.Progress != "" {
		sb.WriteString(v.Progress)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(v.Question)
	sb.WriteString("\n")

	if v.Error != "" {
		sb.WriteString(labelDetail)
		sb.WriteString(v.Error)
		sb.WriteString("\n")
	}

	if len(v.Options) > 0 {
		sb.WriteString("\n")
		for i, opt := range v.Options {
			mark := "[ ]"
			if opt.Checked {
				mark = "[x]"
			}
			sb.WriteString(fmt.Sprintf("  %d) %s %s\n", i+1, mark, opt.Text))
		}
	}

	if v.Result != nil {
		sb.WriteString("\n")
		if v.Result.Correct {
			sb.WriteString(labelCorrect)
		} else {
			sb.WriteString(labelIncorrect)
			sb.WriteString(" - ")
			sb.WriteString(labelCorrectAnswer)
			sb.WriteString(v.Result.CorrectText)
		}
		sb.WriteString("\n")
	}

	if v.Explanation != "" {
		sb.WriteString(labelExplanation)
		sb.WriteString(v.Explanation)
		sb.WriteString("\n")
	}

	if v.FinalScore != "" {
		sb.WriteString("\n")
		sb.WriteString(v.FinalScore)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Score: %d  Answered: %d  Total: %d  Fails: %d\n", v.Score, v.Answered, v.Total, v.Failed))
	sb.WriteString(renderControls(v.Controls))
	sb.WriteString("\n")

	return sb.String()
}

// renderControls lists the commands, striking through the disabled ones with "-".
func renderControls(c service.Controls) string {
	items := []struct {
		label   string
		enabled bool
	}{
		{"[a]nswer", c.Answer},
		{"[n]ext", c.Next},
		{"[p]rev", c.Prev},
		{"[r]estart", c.Restart},
	}

	parts := make([]string, 0, len(items)+1)
	for _, item := range items {
		if item.enabled {
			parts = append(parts, item.label)
		} else {
			parts = append(parts, "-")
		}
	}
	parts = append(parts, "[q]uit")

	return strings.Join(parts, " ")
}
