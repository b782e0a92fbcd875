package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"uttt/game"
)

type Option func(m *MCTS)

// MCTS runs Monte Carlo Tree Search decisions. A fresh tree is grown per
// decision and discarded once the action is chosen; nothing is shared
// between decisions except the configuration and the random source.
type MCTS struct {
	iterations int
	explore    float64
	expand     ExpandPolicy
	rollout    RolloutPolicy
	rng        *rand.Rand
	metrics    Collector
	last       SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(explore float64) Option {
	return func(m *MCTS) {
		if explore >= 0 {
			m.explore = explore
		}
	}
}

// WithSeed makes every expansion choice and rollout reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithExpandPolicy(policy ExpandPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.expand = policy
		}
	}
}

func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations: DefaultIterations,
		explore:    DefaultExploreFaction,
		expand:     SingleExpand,
		rollout:    UniformRollout,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Think chooses an action for the player to move in state by running the
// configured number of search iterations from a fresh root.
func (m *MCTS) Think(board game.Board, state game.State) game.Action {
	root := m.search(board, state)
	return bestAction(root)
}

// LastMetric returns metrics for the most recent Think call. Zero unless
// the searcher was built with WithMetrics.
func (m *MCTS) LastMetric() SearchMetric {
	return m.last
}

func (m *MCTS) search(board game.Board, state game.State) *node {
	bot := board.CurrentPlayer(state)
	root := newNode(nil, nil, board.LegalActions(state))

	m.metrics.Start()
	for i := 0; i < m.iterations; i++ {
		n, nodeState := m.traverse(board, root, state, bot)
		if !board.IsEnded(nodeState) && len(n.untried) > 0 {
			n, nodeState = m.expand.expand(board, n, nodeState, m.rng)
		}
		end, plies := m.rollout.rollout(board, nodeState, m.rng)
		backpropagate(n, isWin(board, end, bot))

		m.metrics.AddIteration()
		m.metrics.AddPlayout(plies)
		m.metrics.AddDepth(n.depth())
	}
	m.last = m.metrics.Complete()

	return root
}

// traverse descends from n while the state is non-terminal and the node is
// fully expanded with children, following the max-UCB child at each ply. The
// UCB perspective belongs to whoever moves at the node. A fresh node (all
// actions untried, zero visits) returns immediately, so UCB is never
// evaluated on a zero-visit node.
func (m *MCTS) traverse(board game.Board, n *node, state game.State, bot game.PlayerID) (*node, game.State) {
	for !board.IsEnded(state) && len(n.untried) == 0 && len(n.children) > 0 {
		opponent := board.CurrentPlayer(state) != bot
		child := bestChild(n, opponent, m.explore)
		state = board.NextState(state, child.parentAction)
		n = child
	}
	return n, state
}

// backpropagate walks parent links from n to the root inclusive, adding a
// visit at every node on the path and a win when the bot won the simulation.
func backpropagate(n *node, won bool) {
	for ; n != nil; n = n.parent {
		n.visits++
		if won {
			n.wins++
		}
	}
}

// isWin reports whether the terminal state is a win for the bot. The board
// panics if the state is not terminal - that is a search bug, not a
// recoverable condition.
func isWin(board game.Board, state game.State, bot game.PlayerID) bool {
	points := board.PointsValues(state)
	if points == nil {
		panic("points queried on a non-terminal state")
	}
	return points[bot] == 1
}
