package vars

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Missing builds the merged context for the given variable files and
// overrides, then compares it against the device's reference variables at
// <devicePath>/variables/<deviceID>.yaml. It returns the reference keys
// absent from the merged context, sorted for stable output.
//
// Only key presence is checked; values are never compared.
func Missing(baseDir, deviceID, devicePath string, files, overrides []string) ([]string, error) {
	context, err := Build(baseDir, files, overrides)
	if err != nil {
		return nil, err
	}

	refPath := filepath.Join(devicePath, "variables", deviceID+".yaml")
	reference, err := loadYAML(refPath)
	if err != nil {
		return nil, fmt.Errorf("loading reference variables for device %s: %w", deviceID, err)
	}

	var missing []string
	for key := range reference {
		if _, ok := context[key]; !ok {
			missing = append(missing, key)
		}
	}

	sort.Strings(missing)

	return missing, nil
}

// Validate reports 1 when any reference variable is absent from the merged
// context and 0 when all are present.
func Validate(baseDir, deviceID, devicePath string, files, overrides []string) (int, error) {
	missing, err := Missing(baseDir, deviceID, devicePath, files, overrides)
	if err != nil {
		return 0, err
	}

	if len(missing) > 0 {
		return 1, nil
	}

	return 0, nil
}
