package searcher

import (
	"math"

	"uttt/game"
)

// ucb scores child c for selection at its parent. Statistics are stored as
// wins for the fixed bot identity; when the opponent moves at the parent the
// exploitation term flips to 1 - winrate, since the opponent plays to
// minimize the bot's chances.
//
// An unvisited child scores +Inf so it is always preferred, which also keeps
// zero visit counts out of the division and the log below. A zero-visit
// parent cannot occur when scoring children (a parent accrues a visit before
// its children are ever scored); it scores 0 defensively.
func ucb(c *node, opponent bool, explore float64) float64 {
	if c.visits == 0 {
		return math.Inf(1)
	}
	if c.parent.visits == 0 {
		return 0
	}

	winrate := float64(c.wins) / float64(c.visits)
	if opponent {
		winrate = 1 - winrate
	}
	exploration := explore * math.Sqrt(math.Log(float64(c.parent.visits))/float64(c.visits))
	return winrate + exploration
}

// bestChild returns the child with the maximum UCB score. Comparison is
// strictly greater, so on ties the first-encountered child (creation order)
// wins.
func bestChild(n *node, opponent bool, explore float64) *node {
	if len(n.children) == 0 {
		panic("selecting from a node with no children")
	}

	best := n.children[0]
	bestScore := ucb(best, opponent, explore)
	for _, child := range n.children[1:] {
		if score := ucb(child, opponent, explore); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// bestAction returns the root action with the highest win rate, ties broken
// by first encounter in creation order.
func bestAction(root *node) game.Action {
	if len(root.children) == 0 {
		panic("root has no children to choose from")
	}

	best := root.children[0]
	bestRate := winRate(best)
	for _, child := range root.children[1:] {
		if rate := winRate(child); rate > bestRate {
			best = child
			bestRate = rate
		}
	}
	return best.parentAction
}

func winRate(n *node) float64 {
	if n.visits == 0 {
		return 0
	}
	return float64(n.wins) / float64(n.visits)
}
