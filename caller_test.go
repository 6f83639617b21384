package gomaskx_test

import (
	"testing"

	"github.com/muhammadluth/gomaskx"
	"github.com/pkg/errors"
)

// Direct call: source should point at this line.
func TestDirectCall(t *testing.T) {
	gomaskx.Error("trace-001", "test", errors.New("direct call error"))
}

// Single wrapper: source should point inside LogError,
// not inside gomaskx.
func LogError(traceID string, err error) {
	gomaskx.Error(traceID, "wrapper", err)
}

func TestSingleWrapper(t *testing.T) {
	LogError("trace-002", errors.New("single wrapper error"))
}

// Nested wrappers: source should point at the innermost frame
// outside gomaskx.
func LogErrorLevel1(traceID string, err error) {
	LogErrorLevel2(traceID, err)
}

func LogErrorLevel2(traceID string, err error) {
	LogErrorLevel3(traceID, err)
}

func LogErrorLevel3(traceID string, err error) {
	gomaskx.Error(traceID, "nested-wrapper", err)
}

func TestNestedWrapper(t *testing.T) {
	LogErrorLevel1("trace-003", errors.New("nested wrapper error"))
}

// Helper method on a struct: source should point inside logError,
// the first frame outside gomaskx.
type Service struct {
	name string
}

func (s *Service) ProcessData() error {
	err := errors.New("processing failed")
	s.logError("trace-004", err)
	return err
}

func (s *Service) logError(traceID string, err error) {
	gomaskx.Error(traceID, s.name, err)
}

func TestStructMethod(t *testing.T) {
	svc := &Service{name: "user-service"}
	svc.ProcessData()
}

func TestAllLogLevels(t *testing.T) {
	gomaskx.Info("trace-005", "test", gomaskx.MESSSAGE_TYPE_EVENT, "info message", nil)
	gomaskx.Warning("trace-006", "test", "warning message", nil)
	gomaskx.Error("trace-007", "test", errors.New("error message"))
	gomaskx.Debug("trace-008", "test", gomaskx.MESSSAGE_TYPE_EVENT, "debug message", nil)
}
