package renderer

import (
	"path/filepath"
	"regexp"
	"strings"

	"tester-report/internal/types"
)

var unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]`)

// OutputName derives the output file name for a report.
//
// The expert name is preferred; reports without one are named after the
// source file, minus its extension and a trailing "_Report".
func OutputName(settings *types.Settings, sourcePath, ext string) string {
	name, _ := settings.Get(labelExpert)
	if name == "" {
		base := filepath.Base(sourcePath)
		name = strings.TrimSuffix(strings.TrimSuffix(base, filepath.Ext(base)), "_Report")
	}
	return unsafeNameChars.ReplaceAllString(name, "_") + "_report." + ext
}
