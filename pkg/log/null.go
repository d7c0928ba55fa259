package log

// Null discards everything logged to it. Fatalf does not exit. The
// zero value is ready to use.
type Null struct{}

func (Null) Infof(string, ...interface{})  {}
func (Null) Errorf(string, ...interface{}) {}
func (Null) Debugf(string, ...interface{}) {}
func (Null) Fatalf(string, ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return Null{}
}
