package loganalyzer

import (
	"fmt"
	"os"
)

// ValidatePath checks that the given path points at a usable log file:
// it exists, is a regular file, is readable and is not empty.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// The user may have dropped the .log extension
			if _, statErr := os.Stat(path + ".log"); statErr == nil {
				return fmt.Errorf("file '%s' does not exist; maybe you wanted to use '%s.log'?", path, path)
			}
			return fmt.Errorf("file '%s' does not exist", path)
		}
		return fmt.Errorf("cannot access '%s': %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("'%s' is not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("you have no permissions to access '%s'", path)
	}
	file.Close()

	if info.Size() == 0 {
		return fmt.Errorf("the file '%s' is empty", path)
	}

	return nil
}
