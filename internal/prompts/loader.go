// Package prompts holds the solver's prompt catalog. Each stage family
// lives in its own embedded JSON file keyed by prompt name, so prompt
// wording can change without touching pipeline code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFS embed.FS

var (
	loadOnce sync.Once
	catalog  map[string]map[string]string
	loadErr  error
)

// load reads every embedded prompt file exactly once. A malformed file is
// a packaging error and poisons the whole catalog.
func load() (map[string]map[string]string, error) {
	loadOnce.Do(func() {
		entries, err := promptFS.ReadDir(".")
		if err != nil {
			loadErr = fmt.Errorf("reading prompt catalog: %w", err)
			return
		}
		catalog = make(map[string]map[string]string, len(entries))
		for _, entry := range entries {
			data, err := promptFS.ReadFile(entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("reading prompt file %s: %w", entry.Name(), err)
				return
			}
			var prompts map[string]string
			if err := json.Unmarshal(data, &prompts); err != nil {
				loadErr = fmt.Errorf("parsing prompt file %s: %w", entry.Name(), err)
				return
			}
			catalog[entry.Name()] = prompts
		}
	})
	return catalog, loadErr
}

// Get returns the prompt stored under key in the named catalog file, for
// example Get("experts.json", "ux").
func Get(filename, key string) (string, error) {
	files, err := load()
	if err != nil {
		return "", err
	}
	prompts, ok := files[filename]
	if !ok {
		return "", fmt.Errorf("no prompt file %s in catalog", filename)
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the pipeline cannot run without.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(err)
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with the given values. Keys
// absent from data leave their placeholder untouched.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
