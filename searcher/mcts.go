package searcher

import "github.com/thurn/spellclash-ai/game"

// MonteCarloOption configures a MonteCarlo selector.
type MonteCarloOption func(*monteCarloConfig)

type monteCarloConfig struct {
	maxIterations int
	scorer        ChildScoreAlgorithm
}

// WithMaxIterations caps the number of search iterations. Without it the
// search runs until the deadline.
func WithMaxIterations(iterations int) MonteCarloOption {
	return func(c *monteCarloConfig) {
		if iterations > 0 {
			c.maxIterations = iterations
		}
	}
}

// WithChildScore replaces the UCT1 child scoring formula.
func WithChildScore(scorer ChildScoreAlgorithm) MonteCarloOption {
	return func(c *monteCarloConfig) {
		if scorer != nil {
			c.scorer = scorer
		}
	}
}

// MonteCarlo is UCT1-driven Monte Carlo tree search. Each iteration runs the
// classic four phases: selection descends the tree by exploration-mode child
// scores until reaching a node with an untried action or a terminal state,
// expansion materializes one untried child, simulation scores the reached
// state through the evaluator (typically a RandomPlayout), and
// backpropagation adds that reward to every node on the path.
//
// The final move is the root child with the best exploitation-mode score,
// i.e. the highest average reward rather than the highest visit count.
type MonteCarlo[S game.State[S, A, P], A, P comparable] struct {
	maxIterations int
	scorer        ChildScoreAlgorithm
}

func NewMonteCarlo[S game.State[S, A, P], A, P comparable](options ...MonteCarloOption) *MonteCarlo[S, A, P] {
	config := monteCarloConfig{scorer: UCT1{}}
	for _, option := range options {
		option(&config)
	}
	return &MonteCarlo[S, A, P]{
		maxIterations: config.maxIterations,
		scorer:        config.scorer,
	}
}

func (m *MonteCarlo[S, A, P]) PickAction(ctx Context, state S, evaluator game.Evaluator[S, P], player P) A {
	if m.maxIterations <= 0 && ctx.Deadline.IsZero() {
		panic("monte carlo search requires a deadline or an iteration cap")
	}

	root := newSearchNode[S, A, P](nil, *new(A), state)
	for iterations := 0; m.maxIterations <= 0 || iterations < m.maxIterations; iterations++ {
		if ctx.Expired() {
			break
		}
		m.runIteration(root, state, evaluator, player)
	}

	if len(root.children) == 0 {
		// The deadline passed before a single iteration ran.
		if ctx.PanicOnTimeout {
			panic("search deadline exceeded before any monte carlo iteration completed")
		}
		return firstAction[S, A, P](state, player)
	}
	return root.bestChild(m.scorer, Best).action
}

func (m *MonteCarlo[S, A, P]) runIteration(
	root *searchNode[A, P], rootState S, evaluator game.Evaluator[S, P], player P,
) {
	state := rootState.Copy()

	// Selection: descend while nodes are fully expanded.
	node := root
	for !node.terminal && !node.expandable() {
		next := node.bestChild(m.scorer, Exploration)
		state.ExecuteAction(node.player, next.action)
		node = next
	}

	// Expansion: materialize one untried child.
	if !node.terminal {
		action := node.takeUntried()
		state.ExecuteAction(node.player, action)
		child := newSearchNode[S, A, P](node, action, state)
		node.children = append(node.children, child)
		node = child
	}

	// Simulation: delegate scoring of the reached state to the evaluator.
	reward := float64(evaluator.Evaluate(state, player))

	// Backpropagation. Each node accumulates the reward from the point of
	// view of the player who moved into it (the parent's player), so
	// selection at an opponent node favors the opponent's strongest replies
	// and root children carry rewards in the searching player's perspective.
	for ; node != nil; node = node.parent {
		if node.parent == nil || node.parent.player == player {
			node.reward += reward
		} else {
			node.reward -= reward
		}
		node.visits++
	}
}
