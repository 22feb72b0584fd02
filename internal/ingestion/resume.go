// Package ingestion turns uploaded resume files into clean plain text for
// the profile building workflow.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ResumeText extracts plain text from a resume file. PDF and word-processor
// formats go through docconv; .txt files are read as-is. The result is
// normalized with CleanText.
func ResumeText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to convert %s: %w", path, err)
		}
		text = res.Body
	case ".txt", ".md":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		text = string(content)
	default:
		return "", fmt.Errorf("unsupported resume format: %s", ext)
	}

	return CleanText(text), nil
}
