package searcher

import (
	"slices"

	"github.com/thurn/spellclash-ai/game"
)

// searchNode is one vertex of the Monte Carlo search tree, labeled on its
// incoming edge with the action that produced it. The tree is built fresh for
// every decision and discarded afterwards.
//
// reward accumulates evaluator outputs and visits counts completed
// backpropagations through this node; every materialized node is visited by
// the iteration that created it, so visits >= 1 by the time the node is
// scored.
type searchNode[A, P comparable] struct {
	parent *searchNode[A, P]

	// action is the edge label: the move that led from parent to this node.
	// Meaningless on the root.
	action A

	// player has the turn at this node. Meaningless on terminal nodes.
	player   P
	terminal bool

	children []*searchNode[A, P]
	untried  []A

	reward float64
	visits uint32
}

// newSearchNode materializes the vertex for state, reached from parent via
// action. The untried action list is captured eagerly so expansion can hand
// out one action at a time.
func newSearchNode[S game.State[S, A, P], A, P comparable](
	parent *searchNode[A, P], action A, state S,
) *searchNode[A, P] {
	node := &searchNode[A, P]{parent: parent, action: action}
	status := state.Status()
	if status.Completed() {
		node.terminal = true
		return node
	}
	node.player = status.MustTurn()
	node.untried = slices.Collect(state.LegalActions(node.player))
	if len(node.untried) == 0 {
		panic("state reported no legal actions for the player to move")
	}
	return node
}

// expandable reports whether the node still has untried actions.
func (n *searchNode[A, P]) expandable() bool {
	return len(n.untried) > 0
}

// takeUntried pops the next untried action.
func (n *searchNode[A, P]) takeUntried() A {
	action := n.untried[0]
	n.untried = n.untried[1:]
	return action
}

// bestChild returns the child maximizing scorer in the given mode. All
// children have at least one visit, so the scorer precondition holds.
func (n *searchNode[A, P]) bestChild(scorer ChildScoreAlgorithm, mode ScoreMode) *searchNode[A, P] {
	var best *searchNode[A, P]
	bestScore := 0.0
	for _, child := range n.children {
		score := scorer.Score(n.visits, child.visits, child.reward, mode)
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	if best == nil {
		panic("node has no children to select from")
	}
	return best
}
