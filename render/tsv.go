package render

import (
	"fmt"
	"io"

	"github.com/revelaction/mailshare/classify"
)

// TSVRenderer writes one line per result: the 1-based input line number,
// the label and, optionally, the score, separated by tabs.
type TSVRenderer struct {
	WithScore bool
}

func (r *TSVRenderer) Render(w io.Writer, report classify.Report) error {
	for _, res := range report.Results {
		var err error
		if r.WithScore {
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", res.Index+1, res.Label, Score(res.Score))
		} else {
			_, err = fmt.Fprintf(w, "%d\t%s\n", res.Index+1, res.Label)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// compile-time interface check
var _ Renderer = (*TSVRenderer)(nil)
