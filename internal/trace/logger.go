package trace

import "os"

// DatadogLogger diverts the tracer's own log output to a file, so
// that it never lands in the rendered output on stdout.
type DatadogLogger struct {
	file *os.File
}

func NewDatadogLogger() (*DatadogLogger, error) {
	file, err := os.Create("/tmp/tabulate.dd.log")
	if err != nil {
		return nil, err
	}

	return &DatadogLogger{
		file: file,
	}, nil
}

func (l *DatadogLogger) Log(msg string) {
	l.file.WriteString(msg)
	l.file.WriteString("\n")
}

func (l *DatadogLogger) Close() {
	l.file.Close()
}
