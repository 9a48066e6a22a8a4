package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(fs afero.Fs, path string, maxLines int) ([]string, error) {
	if maxLines <= 0 || strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var window []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			window = keepLast(window, line, maxLines)
		}
		if errors.Is(err, io.EOF) {
			return window, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
	}
}

// keepLast appends line, dropping the oldest entry once window holds n.
func keepLast(window []string, line string, n int) []string {
	if len(window) == n {
		copy(window, window[1:])
		window = window[:n-1]
	}
	return append(window, line)
}

// Problems filters lines down to the ones that report a failure, the way the
// diagnostics panel shows them.
func Problems(lines []string) []string {
	var out []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "failed") || strings.Contains(lower, "error") {
			out = append(out, line)
		}
	}
	return out
}
