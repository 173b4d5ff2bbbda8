package walker

import (
	"fmt"
	"io"
)

// Reporter writes traversal records as they are discovered. There is no
// aggregation or buffering; output order follows discovery order.
type Reporter struct {
	out io.Writer
}

// NewReporter returns a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Mount emits one mount point record: the path, a tab, and the volume name
// (cell-qualified when the volume lives outside the home cell).
func (r *Reporter) Mount(path, volume string) {
	fmt.Fprintf(r.out, "%s\t%s\n", path, volume)
}

// ACL emits one access list record.
func (r *Reporter) ACL(path, body string) {
	fmt.Fprintf(r.out, "Access list for %s is\n%s\n", path, body)
}
