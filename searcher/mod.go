// Package searcher implements Monte Carlo Tree Search for two-player,
// perfect-information, turn-based games. Each decision grows a fresh tree by
// repeated selection, expansion, random rollout, and backpropagation, then
// picks the root action with the best win rate. The search is strictly
// sequential; randomness comes from an injectable, seedable source.
package searcher

// Hyperparameter defaults for MCTS

// DefaultIterations is the number of search iterations per decision.
const DefaultIterations = 100

// DefaultExploreFaction trades exploration against exploitation in the
// UCB formula.
const DefaultExploreFaction = 2.0
