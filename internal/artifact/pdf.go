package artifact

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText pulls the plain text out of a menu PDF. Layout is not
// preserved; the analysis prompt only needs the item names and dates.
func ExtractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyArtifact
	}
	return text, nil
}
