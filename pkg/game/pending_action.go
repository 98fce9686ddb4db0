package game

// pendingAction is an action the table takes on its own after a delay, such as ending the round
type pendingAction int

const (
	pendingActionRuleChange pendingAction = iota
)

// roundOverDelay is how many frames the finished table is shown before the rule change
const roundOverDelay = 30

type pendingTableAction struct {
	Action       pendingAction
	ExecuteAfter int
}
