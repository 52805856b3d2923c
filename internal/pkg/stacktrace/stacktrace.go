// Package stacktrace condenses raw goroutine stacks down to the frames that
// belong to this repository, which keeps panic logs readable.
package stacktrace

import "strings"

// InternalPaths extracts the internal/... file:line references from a raw
// stack trace as produced by runtime/debug.Stack.
func InternalPaths(stack []byte) []string {
	var paths []string

	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		marker := strings.Index(line, "/internal/")
		if marker < 0 {
			continue
		}

		pos := strings.Index(line, ".go:")
		if pos < marker {
			continue
		}

		// Keep everything from internal/ through the line number, dropping
		// the trailing program counter offset.
		frame := line[marker+1:]
		if cut := strings.IndexByte(frame[pos-marker-1:], ' '); cut >= 0 {
			frame = frame[:pos-marker-1+cut]
		}

		paths = append(paths, frame)
	}

	return paths
}
