// Package testutil provides hand-rolled mocks for the core interfaces.
package testutil

import "sync"

// MockSimClient scripts connection and read results for the polling loop.
type MockSimClient struct {
	mu sync.Mutex

	// ConnectResults is consumed one per Connect call; once exhausted the
	// last entry repeats. Empty means Connect always succeeds.
	ConnectResults []error

	// RateResults is consumed one per SimRate call; once exhausted the last
	// entry repeats.
	RateResults []RateResult

	ConnectCalls int
	RateCalls    int
	CloseCalls   int
	SentEvents   []string
	SendErr      error

	connectIdx int
	rateIdx    int
}

// RateResult is one scripted SimRate outcome.
type RateResult struct {
	Rate float64
	Err  error
}

func NewMockSimClient() *MockSimClient {
	return &MockSimClient{}
}

// WithConnectResults scripts the outcomes of successive Connect calls.
func (m *MockSimClient) WithConnectResults(errs ...error) *MockSimClient {
	m.ConnectResults = errs
	return m
}

// WithRates scripts successful reads.
func (m *MockSimClient) WithRates(rates ...float64) *MockSimClient {
	for _, r := range rates {
		m.RateResults = append(m.RateResults, RateResult{Rate: r})
	}

	return m
}

// WithRateResults scripts mixed read outcomes.
func (m *MockSimClient) WithRateResults(results ...RateResult) *MockSimClient {
	m.RateResults = results
	return m
}

func (m *MockSimClient) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ConnectCalls++

	if len(m.ConnectResults) == 0 {
		return nil
	}

	if m.connectIdx >= len(m.ConnectResults) {
		return m.ConnectResults[len(m.ConnectResults)-1]
	}

	err := m.ConnectResults[m.connectIdx]
	m.connectIdx++

	return err
}

func (m *MockSimClient) SimRate() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RateCalls++

	if len(m.RateResults) == 0 {
		return 1.0, nil
	}

	idx := m.rateIdx
	if idx >= len(m.RateResults) {
		idx = len(m.RateResults) - 1
	} else {
		m.rateIdx++
	}

	r := m.RateResults[idx]

	return r.Rate, r.Err
}

func (m *MockSimClient) SendEvent(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentEvents = append(m.SentEvents, name)

	return m.SendErr
}

func (m *MockSimClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CloseCalls++
}

// MockFocusProber returns scripted foreground window titles, repeating the
// last one once exhausted.
type MockFocusProber struct {
	mu     sync.Mutex
	Titles []string
	Calls  int
	idx    int
}

func NewMockFocusProber(titles ...string) *MockFocusProber {
	return &MockFocusProber{Titles: titles}
}

func (m *MockFocusProber) ForegroundWindowTitle() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++

	if len(m.Titles) == 0 {
		return ""
	}

	if m.idx >= len(m.Titles) {
		return m.Titles[len(m.Titles)-1]
	}

	title := m.Titles[m.idx]
	m.idx++

	return title
}

// RecordingListener captures everything the polling loop publishes.
type RecordingListener struct {
	mu          sync.Mutex
	Rates       []float64
	Texts       []string
	Connections []bool
}

func NewRecordingListener() *RecordingListener {
	return &RecordingListener{}
}

func (l *RecordingListener) RateUpdated(rate float64, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Rates = append(l.Rates, rate)
	l.Texts = append(l.Texts, text)
}

func (l *RecordingListener) ConnectionChanged(connected bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Connections = append(l.Connections, connected)
}

// LastText returns the most recent rate text, or empty.
func (l *RecordingListener) LastText() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Texts) == 0 {
		return ""
	}

	return l.Texts[len(l.Texts)-1]
}

// RecordingFocusSink captures focus classifications.
type RecordingFocusSink struct {
	mu     sync.Mutex
	States []bool
}

func NewRecordingFocusSink() *RecordingFocusSink {
	return &RecordingFocusSink{}
}

func (s *RecordingFocusSink) FocusChanged(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.States = append(s.States, active)
}

// Last returns the most recent classification, defaulting to inactive.
func (s *RecordingFocusSink) Last() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.States) == 0 {
		return false
	}

	return s.States[len(s.States)-1]
}

// MockOverlayView records show/hide calls for the visibility controller.
type MockOverlayView struct {
	mu        sync.Mutex
	visible   bool
	ShowCalls int
	HideCalls int
}

func NewMockOverlayView() *MockOverlayView {
	return &MockOverlayView{}
}

func (v *MockOverlayView) Show() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.ShowCalls++
	v.visible = true
}

func (v *MockOverlayView) Hide() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.HideCalls++
	v.visible = false
}

func (v *MockOverlayView) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.visible
}

// SetVisible primes visibility without counting as a call.
func (v *MockOverlayView) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.visible = visible
}
