package exiftool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"shuttercheck/internal/metadata"
)

// DefaultBinary is the exiftool command name used when none is configured.
const DefaultBinary = "exiftool"

// FileResult pairs one requested file with its extracted metadata. Err is
// set when exiftool reported nothing usable for that file.
type FileResult struct {
	Path string
	Raw  metadata.RawMetadata
	Err  error
}

// Extract executes exiftool against the provided paths and decodes the JSON
// response. The returned slice has one entry per requested path, in request
// order. Files exiftool skipped or failed on carry a per-file error; only a
// completely unusable invocation returns a top-level error.
func Extract(ctx context.Context, binary string, paths []string) ([]FileResult, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if len(paths) == 0 {
		return nil, errors.New("exiftool extract: no paths")
	}

	args := append([]string{"-json", "--"}, paths...)
	cmd := exec.CommandContext(ctx, binary, args...)
	output, runErr := cmd.Output()

	// exiftool exits non-zero when any file fails but still emits JSON for
	// the rest, so decode first and only report runErr when nothing came
	// back.
	var entries []map[string]any
	if err := json.Unmarshal(output, &entries); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("exiftool extract: %w: %s", runErr, exitDetail(runErr))
		}
		return nil, fmt.Errorf("exiftool parse: %w", err)
	}

	byPath := make(map[string]metadata.RawMetadata, len(entries))
	for _, entry := range entries {
		source, _ := entry["SourceFile"].(string)
		if source == "" {
			continue
		}
		raw := make(metadata.RawMetadata, len(entry))
		for key, value := range entry {
			if key == "SourceFile" {
				continue
			}
			raw[key] = value
		}
		byPath[filepath.Clean(source)] = raw
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		result := FileResult{Path: path}
		if raw, ok := byPath[filepath.Clean(path)]; ok {
			result.Raw = raw
		} else {
			result.Err = fmt.Errorf("exiftool reported no metadata for %s", filepath.Base(path))
		}
		results = append(results, result)
	}
	return results, nil
}

func exitDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if detail := strings.TrimSpace(string(exitErr.Stderr)); detail != "" {
			return detail
		}
	}
	return "no output"
}
