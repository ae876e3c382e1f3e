package writer

import (
	"fmt"
	"os"
	"strings"
)

// Append adds one transcript block to the file at path, creating it if
// needed. Every block ends with a newline so consecutive blocks never fuse.
func Append(path, text string) error {
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("append output: %w", err)
	}
	return f.Close()
}
