package entities

// Setting keys as they appear in the question document and in configuration.
const (
	SettingShowProgress     = "show_progress"
	SettingShuffleOptions   = "shuffle_options"
	SettingShowExplanation  = "show_explanation"
	SettingShuffleQuestions = "shuffle_questions"
)

// Settings controls how a quiz session is presented.
type Settings struct {
	ShowProgress     bool // show the "Question i / N" indicator
	ShuffleOptions   bool // randomize option order on first view of a question
	ShowExplanation  bool // reveal the explanation after answering
	ShuffleQuestions bool // randomize traversal order at load and on restart
}

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() Settings {
	return Settings{
		ShowProgress:     true,
		ShuffleOptions:   true,
		ShowExplanation:  true,
		ShuffleQuestions: true,
	}
}

// Apply returns a copy of s with the given overrides applied.
// Unknown keys are ignored.
func (s Settings) Apply(overrides map[string]bool) Settings {
	for key, value := range overrides {
		switch key {
		case SettingShowProgress:
			s.ShowProgress = value
		case SettingShuffleOptions:
			s.ShuffleOptions = value
		case SettingShowExplanation:
			s.ShowExplanation = value
		case SettingShuffleQuestions:
			s.ShuffleQuestions = value
		}
	}
	return s
}
