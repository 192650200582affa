package commands

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:templates
var templateFS embed.FS

// scaffoldRoot is the embedded skeleton copied by archmap init.
const scaffoldRoot = "templates/minimal"

// scaffoldProject copies the embedded project skeleton into targetDir
// and returns the relative paths it wrote, in walk order. Existing
// files are skipped unless force is set, and skipped files are not
// reported.
func scaffoldProject(targetDir string, force bool) ([]string, error) {
	var written []string

	err := fs.WalkDir(templateFS, scaffoldRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(scaffoldRoot, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		rel = renameDotfiles(rel)
		targetPath := filepath.Join(targetDir, rel)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0750)
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil
			}
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(targetPath, content, 0600); err != nil {
			return err
		}

		written = append(written, rel)
		return nil
	})

	return written, err
}

// renameDotfiles maps embedded names to their on-disk spelling. The
// skeleton stores "gitignore" without the leading dot so the file stays
// inert inside this repository.
func renameDotfiles(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	switch base {
	case "gitignore":
		return filepath.Join(dir, ".gitignore")
	default:
		return path
	}
}
