package env

import "os"

// tempVars are checked in order; the first one set wins
var tempVars = []string{"TMP", "TEMP", "APPDATA"}

// TempFolder returns the directory used for scratch files.
// It tries TMP, then TEMP, then APPDATA, and falls back to the current directory.
func TempFolder() string {
	return TempFolderFrom(os.LookupEnv)
}

// TempFolderFrom resolves the scratch directory using lookup instead of the
// process environment. Variables that are set but empty are skipped.
func TempFolderFrom(lookup func(string) (string, bool)) string {
	for _, name := range tempVars {
		if dir, ok := lookup(name); ok && dir != "" {
			return dir
		}
	}
	return "."
}
