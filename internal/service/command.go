// internal/service/command.go
package service

import (
	"strings"

	"github.com/luxehh/hfmessages-backend/internal/content"
)

// Command is the closed set of things an inbound reply can mean. Parsing is
// total: anything not matched maps to CommandUnknown, which routes to the
// default menu rather than an error.
type Command int

const (
	CommandUnknown Command = iota
	CommandYes
	CommandNo
	CommandStop
	CommandStart
	CommandKeyword
)

func (c Command) String() string {
	switch c {
	case CommandYes:
		return "yes"
	case CommandNo:
		return "no"
	case CommandStop:
		return "stop"
	case CommandStart:
		return "start"
	case CommandKeyword:
		return "keyword"
	}
	return "unknown"
}

// ParseCommand normalizes inbound text to a Command. For CommandKeyword the
// second return value is the matched keyword (lowercased).
func ParseCommand(text string) (Command, string) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	switch normalized {
	case "yes":
		return CommandYes, ""
	case "no":
		return CommandNo, ""
	case "stop":
		return CommandStop, ""
	case "start":
		return CommandStart, ""
	}
	if _, ok := content.KeywordLinks[normalized]; ok {
		return CommandKeyword, normalized
	}
	return CommandUnknown, ""
}
