package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fight outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Manager owns the service metrics. A nil *Manager records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	iterationBuckets []float64
	registry         *prometheus.Registry

	fights            *prometheus.CounterVec
	combatIterations  prometheus.Histogram
	expGained         prometheus.Counter
	levelUps          prometheus.Counter
	stagesUnlocked    prometheus.Counter
	charactersCreated prometheus.Counter
	trainingStarted   *prometheus.CounterVec
	trainingClaims    *prometheus.CounterVec
	trainingPoints    *prometheus.CounterVec
	lockConflicts     *prometheus.CounterVec
}

// NewManager creates a Manager with its own registry unless one is supplied
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "journey",
		subsystem:        "game",
		iterationBuckets: prometheus.ExponentialBuckets(8, 2, 8),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.fights = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fights_total",
		Help:      "Fights simulated, by outcome and whether it was a first clear",
	}, []string{"outcome", "first_clear"})

	m.combatIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "combat_iterations",
		Help:      "Turn-meter ticks needed to settle a fight",
		Buckets:   m.iterationBuckets,
	})

	m.expGained = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exp_gained_total",
		Help:      "Experience awarded by won fights",
	})

	m.levelUps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "level_ups_total",
		Help:      "Levels gained by characters",
	})

	m.stagesUnlocked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stages_unlocked_total",
		Help:      "First clears that raised a character's completed stage",
	})

	m.charactersCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "characters_created_total",
		Help:      "Characters created",
	})

	m.trainingStarted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_started_total",
		Help:      "Training sessions started, by stat",
	}, []string{"stat"})

	m.trainingClaims = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_claims_total",
		Help:      "Training sessions claimed, by stat",
	}, []string{"stat"})

	m.trainingPoints = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_points_total",
		Help:      "Attribute points granted by training, by stat",
	}, []string{"stat"})

	m.lockConflicts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lock_conflicts_total",
		Help:      "Requests rejected because the character was busy, by operation",
	}, []string{"operation"})
}

// Registry returns the registry the metrics live in
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordFight counts one simulated fight
func (m *Manager) RecordFight(win, firstClear bool, iterations, expGained int) {
	if m == nil {
		return
	}
	outcome := OutcomeLoss
	if win {
		outcome = OutcomeWin
	}
	first := "false"
	if firstClear {
		first = "true"
	}
	m.fights.WithLabelValues(outcome, first).Inc()
	m.combatIterations.Observe(float64(iterations))
	if expGained > 0 {
		m.expGained.Add(float64(expGained))
	}
}

// RecordLevelUps counts levels gained in one step
func (m *Manager) RecordLevelUps(levels int) {
	if m == nil || levels <= 0 {
		return
	}
	m.levelUps.Add(float64(levels))
}

// RecordStageUnlocked counts a newly completed stage
func (m *Manager) RecordStageUnlocked() {
	if m == nil {
		return
	}
	m.stagesUnlocked.Inc()
}

// RecordCharacterCreated counts a new character
func (m *Manager) RecordCharacterCreated() {
	if m == nil {
		return
	}
	m.charactersCreated.Inc()
}

// RecordTrainingStarted counts a training session start
func (m *Manager) RecordTrainingStarted(stat string) {
	if m == nil {
		return
	}
	m.trainingStarted.WithLabelValues(stat).Inc()
}

// RecordTrainingClaim counts a claim and the points it granted
func (m *Manager) RecordTrainingClaim(stat string, points int) {
	if m == nil {
		return
	}
	m.trainingClaims.WithLabelValues(stat).Inc()
	if points > 0 {
		m.trainingPoints.WithLabelValues(stat).Add(float64(points))
	}
}

// RecordLockConflict counts a request rejected by the character lock
func (m *Manager) RecordLockConflict(operation string) {
	if m == nil {
		return
	}
	m.lockConflicts.WithLabelValues(operation).Inc()
}
