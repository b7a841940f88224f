// Package metrics exposes prometheus instrumentation for the conversation
// engine and the HTTP surface.
package metrics

import (
	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// ConversationMetrics exposes counters for conversation flows.
// A nil receiver is safe everywhere, so callers can wire metrics
// unconditionally.
type ConversationMetrics struct {
	stepVisits   *prometheus.CounterVec
	estimates    *prometheus.CounterVec
	inputRejects *prometheus.CounterVec
	resets       prometheus.Counter
	messages     *prometheus.CounterVec
}

// NewConversationMetrics registers the conversation collectors.
func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		stepVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "egainbot",
			Subsystem: "conversation",
			Name:      "step_visits_total",
			Help:      "Total step entries, by step id",
		}, []string{"step_id"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "egainbot",
			Subsystem: "conversation",
			Name:      "estimates_total",
			Help:      "Total cost estimates computed, by pricing category",
		}, []string{"category"}),
		inputRejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "egainbot",
			Subsystem: "conversation",
			Name:      "input_rejects_total",
			Help:      "Total numeric input rejections, by reason",
		}, []string{"reason"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "egainbot",
			Subsystem: "conversation",
			Name:      "resets_total",
			Help:      "Total conversation resets (including session starts)",
		}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "egainbot",
			Subsystem: "conversation",
			Name:      "messages_total",
			Help:      "Total transcript messages appended, by author",
		}, []string{"author"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.stepVisits, m.estimates, m.inputRejects, m.resets, m.messages)
	return m
}

// Hooks returns lifecycle hooks that feed these collectors.
func (m *ConversationMetrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ev *domain.StepEvent) {
			m.ObserveStepVisit(ev.StepID)
		},
		OnMessageAppended: func(ev *domain.MessageEvent) {
			m.ObserveMessage(string(ev.Author))
		},
		OnEstimate: func(ev *domain.EstimateEvent) {
			m.ObserveEstimate(ev.Category)
		},
		OnInputRejected: func(ev *domain.InputRejectedEvent) {
			m.ObserveInputReject(ev.Reason)
		},
		OnReset: func() {
			m.ObserveReset()
		},
	}
}

func (m *ConversationMetrics) ObserveStepVisit(stepID string) {
	if m == nil {
		return
	}
	m.stepVisits.WithLabelValues(stepID).Inc()
}

func (m *ConversationMetrics) ObserveEstimate(category string) {
	if m == nil {
		return
	}
	m.estimates.WithLabelValues(category).Inc()
}

func (m *ConversationMetrics) ObserveInputReject(reason string) {
	if m == nil {
		return
	}
	m.inputRejects.WithLabelValues(reason).Inc()
}

func (m *ConversationMetrics) ObserveReset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

func (m *ConversationMetrics) ObserveMessage(author string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(author).Inc()
}
