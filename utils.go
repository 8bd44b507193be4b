package maprelief

import (
	"io/ioutil"
	"os"
)

// writeFile writes data to a temp file then renames it into place, so a
// failed or interrupted write leaves no partial output behind.
func writeFile(fpath string, data []byte) error {
	tmp := fpath + ".tmp"
	err := ioutil.WriteFile(tmp, data, 0644)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, fpath)
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
