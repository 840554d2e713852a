package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadDir reads every *.json tutorial document under dir and returns an
// immutable Library. Documents are validated in two stages: against the
// JSON Schema first, then structurally. Any invalid document fails the
// whole load with a *FormatError naming the file.
func LoadDir(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no tutorial documents found in %s", dir)
	}
	sort.Strings(files)

	tutorials := make(map[string]*Tutorial, len(files))
	for _, file := range files {
		t, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		lang := strings.ToLower(t.Language)
		if prev, ok := tutorials[lang]; ok {
			return nil, &FormatError{
				File: file,
				Problems: []string{
					fmt.Sprintf("language %q already loaded from another document (%s)", t.Language, prev.Name),
				},
			}
		}
		tutorials[lang] = t
	}

	return newLibrary(tutorials), nil
}

// LoadFile reads and validates a single tutorial document.
func LoadFile(path string) (*Tutorial, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tutorial document: %w", err)
	}
	return parseTutorial(path, raw)
}

func parseTutorial(path string, raw []byte) (*Tutorial, error) {
	if err := validateSchema(raw); err != nil {
		return nil, &FormatError{File: path, Problems: []string{err.Error()}}
	}

	var t Tutorial
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, &FormatError{File: path, Problems: []string{err.Error()}}
	}

	if problems := validateTutorial(&t); len(problems) > 0 {
		return nil, &FormatError{File: path, Problems: problems}
	}
	return &t, nil
}
