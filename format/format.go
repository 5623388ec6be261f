package format

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dungaf/framework"
)

// SupportedFormats returns the closed set of input file formats, for the
// CLI's --formats listing.
func SupportedFormats() []string {
	return []string{"tgf", "apx"}
}

// Parse dispatches to ParseTGF or ParseAPX by fileFormat name.
func Parse(r io.Reader, fileFormat string, strict bool) ([]string, []framework.Attack, error) {
	switch fileFormat {
	case "tgf":
		return ParseTGF(r, strict)
	case "apx":
		return ParseAPX(r, strict)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileFormat)
	}
}
