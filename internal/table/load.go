package table

import (
	"fmt"
	"os"
	"strings"

	"switchports/internal"
)

// DetectFormat picks the parser from the path suffix. Anything other than
// ".csv" is read as a workbook.
func DetectFormat(path string) internal.InputFormat {
	if strings.HasSuffix(path, ".csv") {
		return internal.FormatCSV
	}
	return internal.FormatXLSX
}

func Load(path string) (*Table, error) {
	switch DetectFormat(path) {
	case internal.FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadCSV(f)
	case internal.FormatXLSX:
		return LoadXLSXFile(path)
	default:
		return nil, fmt.Errorf("unsupported input: %s", path)
	}
}
