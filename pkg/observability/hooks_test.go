package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/observability"
)

func TestCombineHooks_FansOutInOrder(t *testing.T) {
	var calls []string

	first := domain.LifecycleHooks{
		OnStepEnter: func(e *domain.StepEvent) { calls = append(calls, "first:"+e.StepID) },
		OnReset:     func() { calls = append(calls, "first:reset") },
	}
	// Second set deliberately leaves OnReset nil.
	second := domain.LifecycleHooks{
		OnStepEnter: func(e *domain.StepEvent) { calls = append(calls, "second:"+e.StepID) },
	}

	combined := observability.CombineHooks(first, second)
	combined.OnStepEnter(&domain.StepEvent{StepID: "welcome"})
	combined.OnReset()

	assert.Equal(t, []string{"first:welcome", "second:welcome", "first:reset"}, calls)
}

func TestCombineHooks_AllEventsForwarded(t *testing.T) {
	var estimates, rejections, messages int

	combined := observability.CombineHooks(domain.LifecycleHooks{
		OnEstimate:        func(e *domain.EstimateEvent) { estimates++ },
		OnInputRejected:   func(e *domain.InputRejectedEvent) { rejections++ },
		OnMessageAppended: func(e *domain.MessageEvent) { messages++ },
	})

	combined.OnEstimate(&domain.EstimateEvent{})
	combined.OnInputRejected(&domain.InputRejectedEvent{})
	combined.OnMessageAppended(&domain.MessageEvent{})

	assert.Equal(t, 1, estimates)
	assert.Equal(t, 1, rejections)
	assert.Equal(t, 1, messages)
}
