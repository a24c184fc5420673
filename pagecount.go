package ankiexport

import (
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var disablePDFConfig sync.Once

// PageCount returns the number of pages of the PDF at path.
func PageCount(path string) (int, error) {
	// pdfcpu would otherwise create a config directory under the user's home.
	disablePDFConfig.Do(api.DisableConfigDir)

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return 0, err
	}
	return len(dims), nil
}
