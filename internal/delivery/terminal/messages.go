package terminal

const (
	msgLoadingQuestions = "Loading questions…"
	msgCommandDisabled  = "That action is not available right now."
	msgSelectFirst      = "Select an option first."
	msgInvalidOption    = "No such option."
	msgUnknownCommand   = "Unknown command. Type h for help."
	msgQuizUnavailable  = "The quiz could not be started. Only h and q are available."
	msgBye              = "Bye."
)

const msgHelp = `Commands:
  <n>  select option n
  a    submit the selected answer
  n    next question
  p    previous question
  r    restart the quiz
  h    show this help
  q    quit`

const (
	labelCorrect       = "Correct"
	labelIncorrect     = "Incorrect"
	labelCorrectAnswer = "Correct answer: "
	labelExplanation   = "Explanation: "
	labelDetail        = "Detail: "
)
