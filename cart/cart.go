// Package cart holds a shopper's working selection as reducer-driven state:
// tagged actions dispatched to a pure transition function. Prices are kept in
// minor currency units throughout; conversion to display units happens at the
// presentation boundary only.
package cart

// Line is one dessert entry in the cart, with name, price and image
// snapshotted at add time so later catalog edits do not reprice the cart.
type Line struct {
	DessertID  uint   `json:"dessertId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	PackOf     int    `json:"packOf"`
	ImageURL   string `json:"imageUrl"`
	Quantity   int    `json:"quantity"`
}

// State is the full cart contents. Reduce never mutates a State it is given.
type State struct {
	Lines []Line `json:"lines"`
}

type Action interface {
	isCartAction()
}

type AddItem struct {
	Line Line
}

type UpdateQuantity struct {
	DessertID uint
	Quantity  int
}

type RemoveItem struct {
	DessertID uint
}

type Clear struct{}

func (AddItem) isCartAction()        {}
func (UpdateQuantity) isCartAction() {}
func (RemoveItem) isCartAction()     {}
func (Clear) isCartAction()          {}

// Reduce applies one action to a state and returns the next state. It upholds
// the cart invariant: at most one line per dessert id, and no line with a
// quantity below one. Unknown actions return the input unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		for i, line := range state.Lines {
			if line.DessertID == a.Line.DessertID {
				next := copyLines(state.Lines)
				next[i].Quantity += a.Line.Quantity
				return State{Lines: next}
			}
		}
		next := copyLines(state.Lines)
		return State{Lines: append(next, a.Line)}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{DessertID: a.DessertID})
		}
		next := copyLines(state.Lines)
		for i := range next {
			if next[i].DessertID == a.DessertID {
				next[i].Quantity = a.Quantity
			}
		}
		return State{Lines: next}

	case RemoveItem:
		next := make([]Line, 0, len(state.Lines))
		for _, line := range state.Lines {
			if line.DessertID != a.DessertID {
				next = append(next, line)
			}
		}
		return State{Lines: next}

	case Clear:
		return State{}
	}
	return state
}

// SubtotalCents sums price*quantity across lines, in minor units.
func (s State) SubtotalCents() int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.PriceCents * int64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities across lines.
func (s State) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

func copyLines(lines []Line) []Line {
	next := make([]Line, len(lines))
	copy(next, lines)
	return next
}
