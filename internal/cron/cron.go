package cron

import (
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/lazedo/yxa/internal/hostaddr/service"
	"github.com/lazedo/yxa/pkg/format"
	"github.com/lazedo/yxa/pkg/logger"
)

// Manager manages cron jobs
type Manager struct {
	cron        *cron.Cron
	logger      *logger.Logger
	hostService *service.HostService
	schedule    string

	mu       sync.Mutex
	primed   bool
	lastAddr string
	lastList []string
}

// NewManager creates a cron manager that logs contact address changes on the
// given schedule
func NewManager(logger *logger.Logger, hostService *service.HostService, schedule string) *Manager {
	return &Manager{
		cron:        cron.New(cron.WithLogger(cron.DefaultLogger)),
		logger:      logger,
		hostService: hostService,
		schedule:    schedule,
	}
}

// Start starts the cron manager
func (m *Manager) Start() {
	_, err := m.cron.AddFunc(m.schedule, m.logAddressChanges)
	if err != nil {
		m.logger.Fatal("Failed to add address watch job: %v", err)
	}

	// Take the baseline now so scheduled runs only log real changes
	m.logAddressChanges()

	m.cron.Start()
	m.logger.Info("Cron manager started")
}

// Stop stops the cron manager
func (m *Manager) Stop() {
	m.cron.Stop()
	m.logger.Info("Cron manager stopped")
}

// logAddressChanges resolves the current contact addresses and logs them when
// they differ from the previous run. The remembered state serves logging
// only; queries elsewhere always resolve fresh. Failures are logged and the
// next run retries.
func (m *Manager) logAddressChanges() {
	addr, err := m.hostService.Address()
	if err != nil {
		m.logger.Error("Address watch: %v", err)
		return
	}
	list, err := m.hostService.Addresses()
	if err != nil {
		m.logger.Error("Address watch: %v", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.primed {
		m.primed = true
		m.lastAddr = addr.Address
		m.lastList = list.Addresses
		m.logger.Info("Watching contact addresses: %s (all: %s)",
			format.FormatAddress(addr.Address), joinAddresses(list.Addresses))
		return
	}

	if addr.Address == m.lastAddr && equalStrings(list.Addresses, m.lastList) {
		m.logger.Debug("Contact addresses unchanged")
		return
	}

	m.logger.Info("Contact address changed: %s -> %s (all: %s)",
		format.FormatAddress(m.lastAddr), format.FormatAddress(addr.Address),
		joinAddresses(list.Addresses))
	m.lastAddr = addr.Address
	m.lastList = list.Addresses
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinAddresses(addrs []string) string {
	colored := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		colored = append(colored, format.FormatAddress(addr))
	}
	return strings.Join(colored, ", ")
}
