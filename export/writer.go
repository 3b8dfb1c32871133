package export

import (
	"bufio"
	"os"
	"runtime"

	"ewintr.nl/playlistgrab/model"
)

// LineEnding is the native line terminator of the host platform.
var LineEnding = lineEnding(runtime.GOOS)

func lineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// WriteExport creates or truncates path and writes one line per item.
func WriteExport(path string, items []model.PlaylistItem) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, item := range items {
		if _, err := w.WriteString(item.Line() + LineEnding); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}
