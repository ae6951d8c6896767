// Package export turns rendered documents into printable PDF files.
package export

import "fmt"

// ExportError represents a failure during one export run
type ExportError struct {
	RunID   string
	Stage   string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	prefix := "export error"
	if e.Stage != "" {
		prefix = fmt.Sprintf("export error (%s)", e.Stage)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Export stages reported in ExportError.Stage.
const (
	StageBuild  = "build"
	StageLaunch = "launch"
	StageLoad   = "load"
	StagePrint  = "print"
	StageWrite  = "write"
)
