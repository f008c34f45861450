package voronoi

import "fmt"

// Status reports how a diagram build went, the same bitflag-over-uint32
// style go-detour's Status uses: a high-level Success/Failure bit plus a
// detail mask of more specific conditions, some of which (DuplicateSite)
// are warnings rather than failures.
type Status uint32

const (
	Failure Status = 1 << 31 // Build failed outright.
	Success Status = 1 << 30 // Build completed.

	StatusDetailMask Status = 0x0fffffff

	// DuplicateSite is set (on a Success) when one or more input sites
	// were skipped because they coincided, after snapping, with a
	// previously-seen site.
	DuplicateSite Status = 1 << 0
	// DegenerateTriple stands for a circle event whose three arcs turned out
	// collinear. Run never sets it: beachline.TryEnqueueCircleEvent drops
	// such triples without reporting them.
	DegenerateTriple Status = 1 << 1
	// EulerMismatch is set when ValidateEuler was requested and the
	// resulting diagram failed V+1-E+F=2.
	EulerMismatch Status = 1 << 2
	// OutOfNodes is set if the beachline became empty mid-run, which
	// should be unreachable for 3 or more distinct sites.
	OutOfNodes Status = 1 << 3
)

// Error implements the error interface.
func (s Status) Error() string {
	if s&Failure != 0 {
		switch {
		case s&OutOfNodes != 0:
			return "beachline emptied before all sites were processed"
		default:
			return fmt.Sprintf("voronoi: build failed (0x%x)", uint32(s))
		}
	}
	if s&Success != 0 {
		var details []string
		if s&DuplicateSite != 0 {
			details = append(details, "duplicate site skipped")
		}
		if s&DegenerateTriple != 0 {
			details = append(details, "degenerate circle event dropped")
		}
		if s&EulerMismatch != 0 {
			details = append(details, "Euler's identity not satisfied")
		}
		if len(details) == 0 {
			return "success"
		}
		msg := "success ("
		for i, d := range details {
			if i > 0 {
				msg += ", "
			}
			msg += d
		}
		return msg + ")"
	}
	return fmt.Sprintf("voronoi: unspecified status 0x%x", uint32(s))
}

// Succeeded reports whether s has its Success bit set.
func (s Status) Succeeded() bool { return s&Success != 0 }

// Failed reports whether s has its Failure bit set.
func (s Status) Failed() bool { return s&Failure != 0 }

// Detail reports whether the given detail bit is set.
func (s Status) Detail(detail Status) bool { return s&detail != 0 }
