// FILE: lixenwraith/smolconf/probe.go
package smolconf

import "os"

// FileProbe reports whether a path can currently be opened for reading.
type FileProbe interface {
	CanOpen(path string) bool
}

// ProbeFunc adapts a function to the FileProbe interface.
type ProbeFunc func(path string) bool

// CanOpen calls f(path).
func (f ProbeFunc) CanOpen(path string) bool {
	return f(path)
}

// OSProbe opens the path read-only and closes it immediately.
type OSProbe struct{}

// CanOpen implements FileProbe.
func (OSProbe) CanOpen(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
