package residual

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes one line per vertex listing its arcs:
//
//	0: (1, f: 3, c: 4) (2, f: 0, c: 2)
//	1: (0, f: -3, c: 0) ...
func (n *Network) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for v, arcs := range n.adj {
		if _, err := fmt.Fprintf(bw, "%d: ", v); err != nil {
			return err
		}
		for _, a := range arcs {
			if _, err := fmt.Fprintf(bw, "(%d, f: %d, c: %d) ", a.Destination, a.Flow, a.Capacity); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
