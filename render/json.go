package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/mailshare/classify"
)

// JSONRenderer writes the results as a JSON array.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes the results. A report without relevant sentences is
// written as an empty array.
func (r *JSONRenderer) Render(w io.Writer, report classify.Report) error {
	results := report.Results
	if results == nil {
		results = []classify.Result{}
	}
	return json.NewEncoder(w).Encode(results)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
