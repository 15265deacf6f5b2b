package terminal

import (
	"strconv"
	"strings"
)

// Command actions.
const (
	actionNone    = ""
	actionSelect  = "select"
	actionAnswer  = "answer"
	actionNext    = "next"
	actionPrev    = "prev"
	actionRestart = "restart"
	actionHelp    = "help"
	actionQuit    = "quit"
	actionUnknown = "unknown"
)

var aliases = map[string]string{
	"a":        actionAnswer,
	"answer":   actionAnswer,
	"n":        actionNext,
	"next":     actionNext,
	"p":        actionPrev,
	"prev":     actionPrev,
	"previous": actionPrev,
	"r":        actionRestart,
	"restart":  actionRestart,
	"h":        actionHelp,
	"help":     actionHelp,
	"?":        actionHelp,
	"q":        actionQuit,
	"quit":     actionQuit,
	"exit":     actionQuit,
}

// command is one parsed input line.
type command struct {
	Action string
	Option int // 1-based displayed option for actionSelect
	Raw    string
}

// decodeCommand parses an input line.
func decodeCommand(line string) command {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return command{Action: actionNone, Raw: raw}
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return command{Action: actionSelect, Option: n, Raw: raw}
	}

	if action, ok := aliases[strings.ToLower(raw)]; ok {
		return command{Action: action, Raw: raw}
	}

	return command{Action: actionUnknown, Raw: raw}
}
