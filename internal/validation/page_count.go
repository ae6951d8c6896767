// Package validation inspects rendered portfolio documents and reports constraint violations.
package validation

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// pageObjectPattern matches page objects but not the /Pages tree node.
var pageObjectPattern = regexp.MustCompile(`/Type\s*/Page\b`)

// CountPDFPages counts the number of pages in a PDF file
// It tries pdfinfo first, then ghostscript, then scans the file for page objects
func CountPDFPages(pdfPath string) (int, error) {
	// Try pdfinfo first (from poppler-utils)
	if count, err := countPagesWithPdfinfo(pdfPath); err == nil {
		return count, nil
	}

	// Fallback to ghostscript
	if count, err := countPagesWithGhostscript(pdfPath); err == nil {
		return count, nil
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return 0, &FileReadError{
			Message: fmt.Sprintf("failed to read PDF file: %s", pdfPath),
			Cause:   err,
		}
	}
	if count := CountPDFPagesBytes(data); count > 0 {
		return count, nil
	}

	return 0, &Error{
		Message: "failed to count PDF pages: install poppler-utils (pdfinfo) or ghostscript",
	}
}

// CountPDFPagesBytes counts uncompressed page objects in PDF content.
// It returns 0 when the page tree lives in compressed object streams.
func CountPDFPagesBytes(data []byte) int {
	return len(pageObjectPattern.FindAll(data, -1))
}

// countPagesWithPdfinfo uses pdfinfo to count PDF pages
func countPagesWithPdfinfo(pdfPath string) (int, error) {
	cmd := exec.Command("pdfinfo", pdfPath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo command failed: %w", err)
	}

	// Parse output looking for "Pages: N"
	lines := strings.Split(string(output), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "Pages:") {
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				count, err := strconv.Atoi(parts[1])
				if err == nil {
					return count, nil
				}
			}
		}
	}

	return 0, fmt.Errorf("could not parse page count from pdfinfo output")
}

// countPagesWithGhostscript uses ghostscript to count PDF pages
func countPagesWithGhostscript(pdfPath string) (int, error) {
	// Use ghostscript to count pages
	// Command: gs -q -dNODISPLAY -c "(filename.pdf) (r) file runpdfbegin pdfpagecount = quit"
	script := fmt.Sprintf("(%s) (r) file runpdfbegin pdfpagecount = quit", pdfPath)
	cmd := exec.Command("gs", "-q", "-dNODISPLAY", "-c", script)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ghostscript command failed: %w", err)
	}

	// Output should be just the page count number
	outputStr := strings.TrimSpace(string(output))
	count, err := strconv.Atoi(outputStr)
	if err != nil {
		return 0, fmt.Errorf("could not parse page count from ghostscript output: %s", outputStr)
	}

	return count, nil
}
