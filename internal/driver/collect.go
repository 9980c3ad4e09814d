package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// CollectSourceFiles lists the source files a run over paths would
// visit, in the order the run visits them. Callers that size progress
// displays ahead of a run use this; the run itself re-collects.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	return collectSourceFiles(ctx, paths)
}

// collectSourceFiles разворачивает пути в отсортированный список .sg
// файлов: директории обходятся рекурсивно, повторы отбрасываются.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == ".sg" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if filepath.Ext(p) == ".sg" {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
