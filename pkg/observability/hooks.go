package observability

import (
	"log/slog"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// CombineHooks fans every lifecycle event out to all the given hook sets, in
// order. Nil callbacks are skipped.
func CombineHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStepEnter != nil {
					h.OnStepEnter(e)
				}
			}
		},
		OnMessageAppended: func(e *domain.MessageEvent) {
			for _, h := range hooks {
				if h.OnMessageAppended != nil {
					h.OnMessageAppended(e)
				}
			}
		},
		OnEstimate: func(e *domain.EstimateEvent) {
			for _, h := range hooks {
				if h.OnEstimate != nil {
					h.OnEstimate(e)
				}
			}
		},
		OnInputRejected: func(e *domain.InputRejectedEvent) {
			for _, h := range hooks {
				if h.OnInputRejected != nil {
					h.OnInputRejected(e)
				}
			}
		},
		OnReset: func() {
			for _, h := range hooks {
				if h.OnReset != nil {
					h.OnReset()
				}
			}
		},
	}
}

// LoggingHooks reports estimates and input rejections through the logger.
// Step and message events stay at debug level to keep serving logs quiet.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(e *domain.StepEvent) {
			logger.Debug("step entered", "step_id", e.StepID, "end_step", e.EndStep)
		},
		OnEstimate: func(e *domain.EstimateEvent) {
			logger.Info("estimate computed",
				"category", e.Category,
				"quantity", e.Quantity,
				"total", e.Total,
			)
		},
		OnInputRejected: func(e *domain.InputRejectedEvent) {
			logger.Info("input rejected", "step_id", e.StepID, "reason", e.Reason)
		},
	}
}
