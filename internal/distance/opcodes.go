package distance

// OpKind is the kind of one character edit
type OpKind uint8

const (
	OpEqual OpKind = iota
	OpReplace
	OpDelete // character only in the first string
	OpInsert // character only in the second string
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return "unknown"
}

// Op is one step of an edit script. APos/BPos index the rune slices and are
// -1 on the side the step does not touch.
type Op struct {
	Kind OpKind
	APos int
	BPos int
}

// EditOps returns a minimal Levenshtein edit script turning a into b. The
// backtrace prefers equal, then replace, then delete, then insert steps, so
// the script is deterministic.
func EditOps(a, b []rune) []Op {
	n, m := len(a), len(b)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := d[i-1][j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			d[i][j] = min(sub, d[i-1][j]+1, d[i][j-1]+1)
		}
	}

	ops := make([]Op, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && d[i][j] == d[i-1][j-1]:
			ops = append(ops, Op{Kind: OpEqual, APos: i - 1, BPos: j - 1})
			i, j = i-1, j-1
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			ops = append(ops, Op{Kind: OpReplace, APos: i - 1, BPos: j - 1})
			i, j = i-1, j-1
		case i > 0 && d[i][j] == d[i-1][j]+1:
			ops = append(ops, Op{Kind: OpDelete, APos: i - 1, BPos: -1})
			i--
		default:
			ops = append(ops, Op{Kind: OpInsert, APos: -1, BPos: j - 1})
			j--
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

// Distance returns the number of non-equal steps in ops
func Distance(ops []Op) int {
	n := 0
	for _, op := range ops {
		if op.Kind != OpEqual {
			n++
		}
	}
	return n
}
