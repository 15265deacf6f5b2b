package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

var (
	ErrMissingQuestions = errors.New("document does not contain 'questions' as an array")
	ErrNoQuestions      = errors.New("document contains no questions")
	ErrTrailingData     = errors.New("unexpected data after question document")
)

// ParseQuestionSet decodes a question document and normalizes every entry.
// Settings found in the document are applied on top of the defaults.
func ParseQuestionSet(data []byte) (*entities.QuestionSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrMissingQuestions
	}

	rawQuestions, ok := root["questions"].([]any)
	if !ok {
		return nil, ErrMissingQuestions
	}
	if len(rawQuestions) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]entities.Question, 0, len(rawQuestions))
	for i, raw := range rawQuestions {
		questions = append(questions, NormalizeQuestion(raw, i))
	}

	return &entities.QuestionSet{
		Settings:  entities.DefaultSettings().Apply(settingsOverrides(root["settings"])),
		Questions: questions,
	}, nil
}

// NormalizeQuestion turns one raw question entry at position pos into a Question.
// Missing or mistyped fields fall back to empty values.
func NormalizeQuestion(raw any, pos int) entities.Question {
	entry, _ := raw.(map[string]any)

	options := []string{}
	if list, ok := entry["options"].([]any); ok {
		options = make([]string, 0, len(list))
		for _, opt := range list {
			options = append(options, stringify(opt, "null"))
		}
	}

	correctAnswer := stringify(entry["correct_answer"], "")

	correctIndex, ok := integerValue(entry["correct_index"])
	if !ok {
		correctIndex = indexOf(options, correctAnswer)
	}
	if correctIndex < 0 {
		correctIndex = -1
	}

	explanation := ""
	if v, ok := entry["explanation"]; ok && v != nil {
		explanation = stringify(v, "")
	} else if meta, ok := entry["meta"].(map[string]any); ok {
		if v, ok := meta["explicacion"]; ok && v != nil {
			explanation = stringify(v, "")
		}
	}

	id := stringify(entry["id"], "")
	uid := "q__" + strconv.Itoa(pos)
	if id != "" {
		uid = id + "__" + strconv.Itoa(pos)
	}

	return entities.Question{
		UID:           uid,
		ID:            id,
		Type:          stringify(entry["type"], entities.DefaultQuestionType),
		Text:          stringify(entry["question"], ""),
		Options:       options,
		CorrectAnswer: correctAnswer,
		CorrectIndex:  correctIndex,
		Explanation:   explanation,
	}
}

func settingsOverrides(raw any) map[string]bool {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	overrides := make(map[string]bool, len(obj))
	for key, value := range obj {
		overrides[key] = truthy(value)
	}
	return overrides
}

// stringify converts a decoded JSON value to display text; nilText is used for null.
func stringify(v any, nilText string) string {
	switch val := v.(type) {
	case nil:
		return nilText
	case string:
		return val
	case json.Number:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// integerValue reports the value of v when it is a JSON number with no fractional part.
func integerValue(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return -1, true
	}
	return int(f), true
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

func indexOf(options []string, text string) int {
	for i, opt := range options {
		if opt == text {
			return i
		}
	}
	return -1
}
