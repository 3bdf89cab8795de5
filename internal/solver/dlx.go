package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for any supported size n
// (√n integer). Exact-cover mapping for side length n:
//
//	columns: 0..n²-1          -> cell (r,c) filled
//	         n²..2n²-1        -> row r has value v
//	         2n²..3n²-1       -> col c has value v
//	         3n²..4n²-1       -> box b has value v, b = (r/√n)*√n + c/√n
//	rows:    n³ candidates (r,c,v)
type DLXSolver struct {
	// UniqueBudget bounds the wall clock of a uniqueness search, same
	// conservative contract as the backtracking engine.
	UniqueBudget time.Duration
}

func NewDLXSolver() *DLXSolver {
	return &DLXSolver{UniqueBudget: DefaultUniqueBudget}
}

// node/column structures (classic dancing links)
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // identifies the (r,c,v) candidate
}

type dlxColumn struct {
	dlxNode
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlx struct {
	n, box    int
	cols      []*dlxColumn
	rowHead   []*dlxNode
	sol       []*dlxNode
	solLen    int
	nodes     int
	activeCnt int  // number of active (uncovered) columns
	stopped   bool // deadline or cancellation aborted the search
}

func newDLX(n, box int) *dlx {
	nCells := n * n
	d := &dlx{
		n:       n,
		box:     box,
		cols:    make([]*dlxColumn, 4*nCells),
		rowHead: make([]*dlxNode, nCells*n),
		sol:     make([]*dlxNode, nCells),
	}
	for i := range d.cols {
		c := &dlxColumn{name: i, active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = len(d.cols)

	// build rows for all (r,c,v)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				row := d.rowIndex(r, c, v)
				cols := d.rowColumns(r, c, v)
				var first, prev *dlxNode
				for _, colID := range cols {
					col := d.cols[colID]
					nd := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom
					nd.down = &col.dlxNode
					nd.up = col.dlxNode.up
					col.dlxNode.up.down = nd
					col.dlxNode.up = nd
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = nd
						nd.left = nd
						nd.right = nd
					} else {
						nd.left = prev
						nd.right = prev.right
						prev.right.left = nd
						prev.right = nd
					}
					prev = nd
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlx) rowIndex(r, c, v int) int {
	return (r*d.n+c)*d.n + (v - 1)
}

func (d *dlx) rowColumns(r, c, v int) [4]int {
	nCells := d.n * d.n
	cell := r*d.n + c
	rowN := nCells + r*d.n + (v - 1)
	colN := 2*nCells + c*d.n + (v - 1)
	b := (r/d.box)*d.box + c/d.box
	boxN := 3*nCells + b*d.n + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlx) decodeRow(row int) (r, c int, v uint8) {
	cell := row / d.n
	v = uint8(row%d.n) + 1
	r = cell / d.n
	c = cell % d.n
	return
}

// core operations
func (d *dlx) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlx) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, deadline time.Time, k, wantCount int, found *int) bool {
	if d.nodes&0xff == 0 && (ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline))) {
		d.stopped = true
		return true // stop search
	}
	// all constraints covered → solution
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, deadline, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the candidate row of a given and covers its columns.
func (d *dlx) applyGiven(r, c, v int) error {
	head := d.rowHead[d.rowIndex(r, c, v)]
	if head == nil {
		return errors.New("invalid row mapping")
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

func (d *dlx) applyGivens(g domain.Grid) error {
	for r := 0; r < d.n; r++ {
		for c := 0; c < d.n; c++ {
			if v := int(g[r][c]); v > 0 {
				if v > d.n {
					return errors.New("invalid given")
				}
				if err := d.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckSize(); err != nil {
		return nil, ports.Stats{}, err
	}
	d := newDLX(g.Size(), g.BoxSize())
	if err := d.applyGivens(g); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, time.Time{}, 0, 1, &found)
	if found < 1 {
		return nil, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	// givens were covered outside the search, so start from the input
	out := g.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out[r][c] = v
	}
	return out, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}

func (s *DLXSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckSize(); err != nil {
		return false, ports.Stats{}, err
	}
	budget := s.UniqueBudget
	if budget <= 0 {
		budget = DefaultUniqueBudget
	}
	d := newDLX(g.Size(), g.BoxSize())
	if err := d.applyGivens(g); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, start.Add(budget), 0, 2, &found) // stop after 2 solutions
	if d.stopped {
		// interrupted: prefer rejecting a possibly-unique grid over
		// certifying a non-unique one
		return false, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
	}
	return found == 1, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}
