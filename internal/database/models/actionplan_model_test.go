package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGutScore(t *testing.T) {
	t.Run("multiplies gravity, urgency and tendency", func(t *testing.T) {
		plan := ActionPlan{GutGravity: 5, GutUrgency: 4, GutTendency: 3}
		assert.Equal(t, 60, plan.GutScore())
	})

	t.Run("defaults of one give the minimum score", func(t *testing.T) {
		plan := ActionPlan{GutGravity: 1, GutUrgency: 1, GutTendency: 1}
		assert.Equal(t, 1, plan.GutScore())
	})

	t.Run("all fives give the maximum score", func(t *testing.T) {
		plan := ActionPlan{GutGravity: 5, GutUrgency: 5, GutTendency: 5}
		assert.Equal(t, 125, plan.GutScore())
	})
}
