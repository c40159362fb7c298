package gridmap

// PathCallback receives the result of a path request. found is false when no
// route exists; path is then nil.
type PathCallback func(path []Cell, found bool)

type pathRequest struct {
	from, to Cell
	callback PathCallback
}

// Planner queues path requests and answers them on the next Calculate call,
// against the grid as it is at that moment. Requests made from inside a
// callback are answered on the following Calculate, never in the same pass.
type Planner struct {
	grid    *Grid
	pending []pathRequest
}

func NewPlanner(grid *Grid) *Planner {
	return &Planner{grid: grid}
}

// Request queues a search from -> to. There is no cancellation; callers guard
// their own state inside the callback.
func (p *Planner) Request(from, to Cell, callback PathCallback) {
	if callback == nil {
		return
	}
	p.pending = append(p.pending, pathRequest{from: from, to: to, callback: callback})
}

// Pending returns the number of unanswered requests.
func (p *Planner) Pending() int {
	return len(p.pending)
}

// Calculate answers every request queued before the call and returns how many
// were processed.
func (p *Planner) Calculate() int {
	batch := p.pending
	p.pending = nil
	for _, req := range batch {
		path := AStar(req.from, req.to, p.grid)
		req.callback(path, path != nil)
	}
	return len(batch)
}

// Reset drops all unanswered requests.
func (p *Planner) Reset() {
	p.pending = nil
}
