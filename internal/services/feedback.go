package services

import (
	"fmt"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DisplayAmount renders a decimal amount in pounds at two decimal places.
// This is the only place engine amounts get rounded; everything upstream
// carries full precision.
func DisplayAmount(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}

// buildFeedback produces the advisory strings for one user's snapshot.
// The messages are emitted in a fixed order so the same inputs always yield
// the same slice:
//
//  1. remaining-budget position (surplus, exhausted, or overspend)
//  2. a flag when one category consumes more than half the total budget
//  3. a pacing warning when the projection exceeds the budget
//  4. an automation hint when recurring payments are present
//
// Budget-derived messages are simply omitted when no budget is configured;
// that is a normal state, not an error.
func buildFeedback(budget *models.Budget, insights *models.SpendingInsights, projection *models.SpendingProjection) []string {
	feedback := make([]string, 0, 4)

	if budget != nil {
		feedback = append(feedback, budgetPositionMessage(budget))

		if msg, ok := dominantCategoryMessage(budget, insights); ok {
			feedback = append(feedback, msg)
		}
	}

	if projection != nil && projection.IsOverBudget() {
		feedback = append(feedback, fmt.Sprintf(
			"At your current pace you are on track to spend %s this month, which exceeds your budget of %s.",
			DisplayAmount(projection.PredictedSpending),
			DisplayAmount(*projection.TotalBudget)))
	}

	if insights != nil && len(insights.RecurringKeys) > 0 {
		feedback = append(feedback,
			"You have recurring payments. Consider setting up automatic transfers to cover them.")
	}

	return feedback
}

// budgetPositionMessage reports where the user stands against the total
// budget: surplus, exactly exhausted, or overspent by an absolute amount.
func budgetPositionMessage(budget *models.Budget) string {
	remaining := budget.Remaining()

	switch {
	case remaining.IsPositive():
		return fmt.Sprintf(
			"You have %s left in your budget. Consider allocating some of it to savings.",
			DisplayAmount(remaining))
	case remaining.IsZero():
		return "You have no remaining budget for this month."
	default:
		return fmt.Sprintf(
			"You have overspent by %s. Consider adjusting your budget next month.",
			DisplayAmount(remaining.Abs()))
	}
}

// dominantCategoryMessage flags the highest spending category when it
// consumes more than half of the total budget. A zero budget never flags.
func dominantCategoryMessage(budget *models.Budget, insights *models.SpendingInsights) (string, bool) {
	if insights == nil || insights.HighestSpendingCategory == "" || !budget.TotalBudget.IsPositive() {
		return "", false
	}

	total, ok := insights.CategoryTotalFor(insights.HighestSpendingCategory)
	if !ok {
		return "", false
	}

	half := budget.TotalBudget.Div(decimal.NewFromInt(2))
	if !total.GreaterThan(half) {
		return "", false
	}

	return fmt.Sprintf(
		"%s spending of %s has used more than half of your %s budget.",
		insights.HighestSpendingCategory,
		DisplayAmount(total),
		DisplayAmount(budget.TotalBudget)), true
}
