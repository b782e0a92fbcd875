package searcher

import "uttt/game"

// node is a vertex of the search tree. The tree is a strict arborescence:
// every node except the root has exactly one parent, and a node owns its
// children exclusively. actions and children are parallel slices standing in
// for a children-by-action mapping; slices keep iteration in insertion
// order, which the deterministic tie-breaks depend on. untried and actions
// partition the node's legal actions at all times.
type node struct {
	parent       *node
	parentAction game.Action // nil for the root
	actions      []game.Action
	children     []*node
	untried      []game.Action
	visits       int
	wins         int // simulations won by the tracked bot identity
}

func newNode(parent *node, parentAction game.Action, legal []game.Action) *node {
	untried := make([]game.Action, len(legal))
	copy(untried, legal)
	return &node{
		parent:       parent,
		parentAction: parentAction,
		untried:      untried,
	}
}

// addChild materializes untried[i] as a new child: plays the action, reads
// the resulting state's legal actions, and moves the action from untried to
// the children mapping. Returns the child and its state.
func (n *node) addChild(board game.Board, state game.State, i int) (*node, game.State) {
	action := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)

	childState := board.NextState(state, action)
	child := newNode(n, action, board.LegalActions(childState))
	n.actions = append(n.actions, action)
	n.children = append(n.children, child)
	return child, childState
}

func (n *node) depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}
