package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"asteroidcli/internal/config"
	apperrors "asteroidcli/internal/errors"
)

// FileValidator checks command-line paths before any file is opened
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateExtension checks the path's extension, case-insensitively, without touching the file system.
// kind names the file in the diagnostic, e.g. "dataset".
func (v *FileValidator) ValidateExtension(path, kind, wantExt string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != wantExt {
		v.logger.Warn("Unexpected file extension",
			slog.String("kind", kind),
			slog.String("file", path),
			slog.String("extension", ext),
			slog.String("required", wantExt))
		return apperrors.NewValidationError(
			fmt.Sprintf("the provided %s file '%s' is not of a required '*%s' format", kind, path, wantExt)).
			WithContext("path", path)
	}
	return nil
}

// ValidateDatasetPath checks that the input path names a CSV file
func (v *FileValidator) ValidateDatasetPath(path string) error {
	return v.ValidateExtension(path, "dataset", config.DatasetExtension)
}

// ValidateReportPath checks that the output path names an xlsx workbook
func (v *FileValidator) ValidateReportPath(path string) error {
	return v.ValidateExtension(path, "report", config.ReportExtension)
}

// ValidateFile checks if a specific file exists and is a regular file
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Warn("File does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError(fmt.Sprintf("the dataset file named %q", path), err)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewNotFoundError(fmt.Sprintf("the dataset file named %q", path), err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("%s is a directory, not a file", path))
	}

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}
