// Package simconnect provides a minimal client for the Microsoft Flight
// Simulator SimConnect automation interface: connect, read the simulation
// rate, and transmit rate-change events.
//
// Every failure mode collapses to "disconnected" at the call site; callers
// are expected to Close and retry on any error.
package simconnect

import "errors"

// Client event names understood by the simulator.
const (
	// EventSimRateIncr doubles the simulation rate (up to the sim's cap).
	EventSimRateIncr = "SIM_RATE_INCR"

	// EventSimRateDecr halves the simulation rate.
	EventSimRateDecr = "SIM_RATE_DECR"
)

// simulationRateVar is the simulator variable holding the rate multiplier.
const simulationRateVar = "SIMULATION RATE"

var (
	// ErrUnavailable indicates SimConnect.dll could not be loaded. The SDK
	// runtime ships with the simulator; without it there is nothing to
	// connect to.
	ErrUnavailable = errors.New("SimConnect library not available")

	// ErrNotConnected indicates an operation was attempted without a live
	// connection.
	ErrNotConnected = errors.New("not connected to simulator")

	// ErrSimQuit indicates the simulator announced shutdown.
	ErrSimQuit = errors.New("simulator quit")

	// ErrUnknownEvent indicates an event name with no client mapping.
	ErrUnknownEvent = errors.New("unknown client event")
)
