package model

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns a short lowercase name for the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ProgressEvent is a notification reported by long-running or
// side-effecting operations (loading a catalog, tagging files).
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}
