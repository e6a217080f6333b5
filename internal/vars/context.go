package vars

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Build loads and merges variable files in order into a single context.
// Later files overwrite top-level keys from earlier ones; INI sections stay
// nested under their section name. Overrides of the form "key=value" are
// applied last and always win. Relative file paths are resolved against
// baseDir.
func Build(baseDir string, files []string, overrides []string) (map[string]any, error) {
	context := make(map[string]any)

	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		for key, val := range loaded {
			context[key] = val
		}
	}

	for _, override := range overrides {
		key, value, found := strings.Cut(override, "=")
		if !found {
			return nil, fmt.Errorf("override %q is not of the form key=value", override)
		}
		context[key] = value
	}

	return context, nil
}

// loadFile picks a parser by file extension: .ini and .toml get dedicated
// parsers, everything else is treated as YAML.
func loadFile(path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return loadINI(path)
	case ".toml":
		return loadTOML(path)
	default:
		return loadYAML(path)
	}
}

func loadINI(path string) (map[string]any, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parsing variables file %s: %w", path, err)
	}

	result := make(map[string]any)

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			// Keys outside any [section] land at the top level.
			for _, key := range section.Keys() {
				result[key.Name()] = key.Value()
			}
			continue
		}

		keys := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			keys[key.Name()] = key.Value()
		}
		result[section.Name()] = keys
	}

	return result, nil
}

func loadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading variables file %s: %w", path, err)
	}

	var result map[string]any
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing variables file %s: %w", path, err)
	}

	return result, nil
}

func loadTOML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading variables file %s: %w", path, err)
	}

	var result map[string]any
	if err := toml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing variables file %s: %w", path, err)
	}

	return result, nil
}
