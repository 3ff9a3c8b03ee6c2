package types

import "log"

// LogLevel classifies a diagnostic message
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelWarning
	LevelError
)

// String returns the display name of the level
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "I"
	case LevelWarning:
		return "W"
	case LevelError:
		return "E"
	default:
		return "?"
	}
}

// Console is the diagnostic sink for one script evaluation
type Console struct {
	sink func(level LogLevel, message string)
}

// NewConsole creates a console with the given sink.
// A nil sink logs through the standard logger.
func NewConsole(sink func(level LogLevel, message string)) *Console {
	if sink == nil {
		sink = func(level LogLevel, message string) {
			log.Printf("[%s] %s", level, message)
		}
	}
	return &Console{sink: sink}
}

// Log emits one diagnostic message
func (c *Console) Log(level LogLevel, message string) {
	c.sink(level, message)
}

// LogEntry is one captured diagnostic message
type LogEntry struct {
	Level   LogLevel
	Message string
}

// Capture collects diagnostics in memory, for tests and embedding hosts
type Capture struct {
	Entries []LogEntry
}

// Console returns a console whose sink appends to the capture
func (c *Capture) Console() *Console {
	return NewConsole(func(level LogLevel, message string) {
		c.Entries = append(c.Entries, LogEntry{Level: level, Message: message})
	})
}
