package util

import (
	"os"
)

// AppendToFile writes each entry as its own line at the end of the file,
// creating it on first use. Trace recording appends one json line per episode
func AppendToFile(savePath string, entries ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, e := range entries {
		if _, err := f.WriteString(e + "\n"); err != nil {
			return err
		}
	}
	return nil
}
