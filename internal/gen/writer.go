package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"luisgen/internal/diagnostic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, replacing
// existing files of the same name. It creates the directory if it doesn't
// exist and returns the written paths.
//
// Files are staged next to their targets and renamed into place only once
// every file was staged, so a failure leaves no partial set behind.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	if outputDir == "" {
		outputDir = "."
	}

	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, diagnostic.NewIOError("write", outputDir, err)
	}

	paths := make([]string, 0, len(files))

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
			return nil, diagnostic.NewIOError("write", outputPath, fmt.Errorf("target is a directory"))
		}

		paths = append(paths, outputPath)
	}

	staged := make([]string, 0, len(files))

	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for i, file := range files {
		tmp, err := stage(outputDir, file)
		if err != nil {
			cleanup()

			return nil, diagnostic.NewIOError("write", paths[i], err)
		}

		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, paths[i]); err != nil {
			staged = staged[i:]
			cleanup()

			return paths[:i], diagnostic.NewIOError("write", paths[i], err)
		}
	}

	return paths, nil
}

// stage writes file to a temporary file in dir and returns its path.
func stage(dir string, file GeneratedFile) (string, error) {
	f, err := os.CreateTemp(dir, "."+file.Filename+".*")
	if err != nil {
		return "", err
	}

	name := f.Name()

	_, err = f.Write(file.Content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		err = os.Chmod(name, filePerm)
	}

	if err != nil {
		_ = os.Remove(name)

		return "", err
	}

	return name, nil
}
