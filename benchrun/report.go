package benchrun

import (
	"fmt"
	"strings"
)

// Report formats results as an aligned text table, one line per
// algorithm/dataset pair, grouped by dataset.
func Report(results []Result) string {
	var b strings.Builder

	lastDataset := ""
	for _, res := range results {
		if res.Dataset != lastDataset {
			if lastDataset != "" {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s (n=%d)\n", res.Dataset, res.N)
			lastDataset = res.Dataset
		}
		fmt.Fprintf(&b, "  %-15s best=%-12s mean=%s\n", res.Algorithm, res.Best, res.Mean)
	}

	return b.String()
}
