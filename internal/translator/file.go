package translator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput indicates the input contained nothing to translate. Callers
// should warn rather than fail, and no output file is written.
var ErrEmptyInput = errors.New("input is empty")

// ErrInvalidEncoding indicates the input was not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8 text")

// header is prepended to every translated file, noting provenance and the
// best-effort nature of the translation, followed by the standard import.
func header(source string) string {
	return fmt.Sprintf(`/-
  Translated from LaTeX source: %s
  This translation is best-effort and syntactic only; review before use.
-/

import Mathlib

`, filepath.Base(source))
}

// OutputPath derives the .lean output path for an input file.
func OutputPath(inputPath string) string {
	switch ext := filepath.Ext(inputPath); ext {
	case ".tex", ".txt":
		return strings.TrimSuffix(inputPath, ext) + ".lean"
	default:
		return inputPath + ".lean"
	}
}

// TranslateFile reads a LaTeX file and writes the translated Lean file in a
// single whole-file write, returning the output path. No partial output is
// ever left behind: encoding and read errors fail before any write, and
// empty input returns ErrEmptyInput without creating a file.
func (t *Translator) TranslateFile(inputPath, outputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, inputPath)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, inputPath)
	}

	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}

	content := header(inputPath) + t.Translate(string(data)) + "\n"

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return outputPath, nil
}
