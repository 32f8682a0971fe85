// Package metrics exposes the wallet's prometheus collectors.
package metrics

import (
	"github.com/cryptowall/go-wallet/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

const namespace = "wallet"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Service owns a dedicated registry, so several servers (e.g. in parallel tests)
// never collide on the global default registerer.
type Service struct {
	Config   config.Server
	Registry *prometheus.Registry

	accountsDerived  *prometheus.CounterVec
	balanceRefreshes *prometheus.CounterVec
	mnemonicsLoaded  *prometheus.CounterVec
}

func New(cfg config.Server) (*Service, error) {
	s := &Service{
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
		accountsDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_derived_total",
			Help:      "Number of accounts derived, by chain.",
		}, []string{"chain"}),
		balanceRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_refreshes_total",
			Help:      "Number of balance refreshes, by chain and result.",
		}, []string{"chain", "result"}),
		mnemonicsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mnemonics_loaded_total",
			Help:      "Number of mnemonics loaded into the session, by origin (generated or imported).",
		}, []string{"origin"}),
	}

	if !cfg.Management.EnableMetrics {
		log.Debug().Msg("Metrics are disabled, collectors stay unregistered")
		return s, nil
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.accountsDerived,
		s.balanceRefreshes,
		s.mnemonicsLoaded,
	} {
		if err := s.Registry.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AccountDerived counts a derived account. Safe on a nil Service.
func (s *Service) AccountDerived(chain string) {
	if s == nil {
		return
	}
	s.accountsDerived.WithLabelValues(chain).Inc()
}

// BalanceRefreshed counts a balance refresh. Safe on a nil Service.
func (s *Service) BalanceRefreshed(chain string, err error) {
	if s == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	s.balanceRefreshes.WithLabelValues(chain, result).Inc()
}

// MnemonicLoaded counts a mnemonic loaded into the session. Safe on a nil Service.
func (s *Service) MnemonicLoaded(origin string) {
	if s == nil {
		return
	}
	s.mnemonicsLoaded.WithLabelValues(origin).Inc()
}
