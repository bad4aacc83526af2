package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	sessionCreatedCounter    prometheus.Counter
	sessionHaltedCounter     prometheus.Counter
	meldPlayedCounter        prometheus.Counter
	passRecordedCounter      prometheus.Counter
	roundCompletedCounter    prometheus.Counter
	exchangeCompletedCounter prometheus.Counter
	automationStepCounter    prometheus.Counter
	activeSessionsGauge      prometheus.Gauge
}

func (m *metrics) SessionCreated() {
	m.sessionCreatedCounter.Inc()
}

func (m *metrics) SessionHalted() {
	m.sessionHaltedCounter.Inc()
}

func (m *metrics) MeldPlayed() {
	m.meldPlayedCounter.Inc()
}

func (m *metrics) PassRecorded() {
	m.passRecordedCounter.Inc()
}

func (m *metrics) RoundCompleted() {
	m.roundCompletedCounter.Inc()
}

func (m *metrics) ExchangeCompleted() {
	m.exchangeCompletedCounter.Inc()
}

func (m *metrics) AutomationStep() {
	m.automationStepCounter.Inc()
}

func (m *metrics) SetActiveSessions(count int) {
	m.activeSessionsGauge.Set(float64(count))
}

var Metrics = &metrics{
	sessionCreatedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_created_total",
		Help: "Total number of sessions created",
	}),
	sessionHaltedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_halted_total",
		Help: "Total number of sessions halted on an invariant violation",
	}),
	meldPlayedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "melds_played_total",
		Help: "Total number of melds accepted",
	}),
	passRecordedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "passes_recorded_total",
		Help: "Total number of passes accepted",
	}),
	roundCompletedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "rounds_completed_total",
		Help: "Total number of rounds played to completion",
	}),
	exchangeCompletedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "exchanges_completed_total",
		Help: "Total number of completed card exchanges",
	}),
	automationStepCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "automation_steps_total",
		Help: "Total number of moves produced for unattended seats",
	}),
	activeSessionsGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions_count",
		Help: "Count of the entries in the session manager map",
	}),
}
