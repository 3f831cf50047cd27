package converter

// ocr.go — image → text via the tesseract binary. OCR itself is delegated;
// this file only probes for the binary and shells out to it.

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// lookPath is swapped in tests to simulate a missing tesseract binary.
var lookPath = exec.LookPath

func ocrAvailable() bool {
	_, err := lookPath("tesseract")
	return err == nil
}

// convertImage is the formatFn for .png/.jpg/.jpeg files.
func convertImage(path string) (string, error) {
	if !ocrAvailable() {
		return "", fmt.Errorf("tesseract is not installed or not on PATH; cannot OCR %s", filepath.Base(path))
	}
	out, err := exec.Command("tesseract", path, "stdout").Output()
	if err != nil {
		return "", fmt.Errorf("tesseract %s: %w", filepath.Base(path), err)
	}
	return strings.TrimSpace(string(out)), nil
}
