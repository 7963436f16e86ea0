package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Check if file exists and is a regular file
func IsValidFile(filename string) bool {
	fileInfo, err := os.Stat(filename)
	return err == nil && fileInfo.Mode().IsRegular()
}

func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.Mode().IsDir()
}

// CollectFiles expands paths into source files. Files are taken as given;
// directories are walked recursively for files ending in ext. Files found in
// one directory are sorted; the order of paths is kept.
func CollectFiles(paths []string, ext string) ([]string, error) {
	var files []string

	for _, path := range paths {
		switch {
		case IsValidFile(path):
			files = append(files, path)
		case IsDir(path):
			found, err := walkDir(path, ext)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		default:
			return nil, fmt.Errorf("file not found: %s", path)
		}
	}

	return files, nil
}

func walkDir(root, ext string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}
