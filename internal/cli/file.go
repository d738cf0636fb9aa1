package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FilePrompt asks for an export when none was given or it was not found.
const FilePrompt = "Enter the Piskel C file filename: "

// LineAsker prints a question and reads one answer.
type LineAsker interface {
	Line(ctx context.Context, question string) (string, error)
}

// AddExtension appends ".c" unless name already ends with it.
func AddExtension(name string) string {
	if strings.HasSuffix(name, ".c") {
		return name
	}
	return name + ".c"
}

// OpenExport reads the export called name, asking for another name until one
// exists. An empty name asks straight away. It returns the path that was read
// and its contents.
func OpenExport(ctx context.Context, name string, ask LineAsker, w io.Writer) (string, string, error) {
	var err error
	if name == "" {
		if name, err = ask.Line(ctx, FilePrompt); err != nil {
			return "", "", err
		}
	}

	for {
		path := AddExtension(name)
		data, err := os.ReadFile(path)
		if err == nil {
			return path, string(data), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		fmt.Fprintf(w, "%s not found.\n", path)
		if name, err = ask.Line(ctx, FilePrompt); err != nil {
			return "", "", err
		}
	}
}
