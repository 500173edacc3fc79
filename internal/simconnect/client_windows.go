//go:build windows

package simconnect

import (
	"fmt"
	"log/slog"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/timeouts"
)

var (
	simconnectDLL                  = syscall.NewLazyDLL("SimConnect.dll")
	procOpen                       = simconnectDLL.NewProc("SimConnect_Open")
	procClose                      = simconnectDLL.NewProc("SimConnect_Close")
	procAddToDataDefinition        = simconnectDLL.NewProc("SimConnect_AddToDataDefinition")
	procRequestDataOnSimObjectType = simconnectDLL.NewProc("SimConnect_RequestDataOnSimObjectType")
	procGetNextDispatch            = simconnectDLL.NewProc("SimConnect_GetNextDispatch")
	procMapClientEventToSimEvent   = simconnectDLL.NewProc("SimConnect_MapClientEventToSimEvent")
	procTransmitClientEvent        = simconnectDLL.NewProc("SimConnect_TransmitClientEvent")
)

// SimConnect protocol constants (from SimConnect.h)
const (
	recvIDNull                = 0
	recvIDException           = 1
	recvIDOpen                = 2
	recvIDQuit                = 3
	recvIDSimobjectDataByType = 8

	datatypeFloat64   = 4
	simobjectTypeUser = 0
	objectIDUser      = 0

	groupPriorityHighest       = 1
	eventFlagGroupIDIsPriority = 0x00000010

	// SIMCONNECT_UNUSED
	unusedID = 0xFFFFFFFF
)

// IDs we assign for our single data definition and the client events.
const (
	defSimRate = 1

	eventIDRateIncr = 1
	eventIDRateDecr = 2
)

// clientEvents maps event names to the client event IDs registered on connect.
var clientEvents = map[string]uintptr{
	EventSimRateIncr: eventIDRateIncr,
	EventSimRateDecr: eventIDRateDecr,
}

// recvHeader mirrors SIMCONNECT_RECV.
type recvHeader struct {
	Size    uint32
	Version uint32
	ID      uint32
}

// recvException mirrors SIMCONNECT_RECV_EXCEPTION.
type recvException struct {
	recvHeader
	Exception uint32
	SendID    uint32
	Index     uint32
}

// recvSimobjectData mirrors SIMCONNECT_RECV_SIMOBJECT_DATA. The requested
// datum block follows the fixed header in memory.
type recvSimobjectData struct {
	recvHeader
	RequestID   uint32
	ObjectID    uint32
	DefineID    uint32
	Flags       uint32
	EntryNumber uint32
	OutOf       uint32
	DefineCount uint32
}

// Client talks to the simulator through SimConnect.dll. At most one live
// handle exists at a time. Methods are safe for concurrent use; the polling
// loop reads while UI threads transmit rate-change events.
type Client struct {
	mu            sync.Mutex
	log           logger.LoggerInterface
	handle        uintptr
	nextRequestID uint32
}

// NewClient creates a disconnected SimConnect client.
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{log: log}
}

// hresultFailed reports whether a SimConnect HRESULT indicates failure.
func hresultFailed(ret uintptr) bool {
	return int32(uint32(ret)) < 0
}

// Connect opens a SimConnect session, registers the simulation-rate data
// definition and the rate-change client events, and verifies the link with a
// test read. Any existing handle is closed first.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := simconnectDLL.Load(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// At most one live handle
	c.closeLocked()

	appName, err := syscall.BytePtrFromString("Sim Rate Monitor")
	if err != nil {
		return err
	}

	var handle uintptr

	ret, _, _ := procOpen.Call(
		uintptr(unsafe.Pointer(&handle)),
		uintptr(unsafe.Pointer(appName)),
		0, // hWnd
		0, // UserEventWin32
		0, // hEventHandle
		0, // ConfigIndex
	)
	if hresultFailed(ret) || handle == 0 {
		return fmt.Errorf("SimConnect_Open failed (simulator not running?): %#x", uint32(ret))
	}

	c.handle = handle
	c.log.Debug("SimConnect session opened", slog.Uint64("handle", uint64(handle)))

	if err := c.defineSimRate(); err != nil {
		c.closeLocked()
		return err
	}

	if err := c.mapClientEvents(); err != nil {
		c.closeLocked()
		return err
	}

	// Verify the connection end to end before declaring it live
	if _, err := c.simRateLocked(); err != nil {
		c.closeLocked()
		return fmt.Errorf("connection test read failed: %w", err)
	}

	return nil
}

// defineSimRate registers the SIMULATION RATE variable under defSimRate.
func (c *Client) defineSimRate() error {
	datumName, err := syscall.BytePtrFromString(simulationRateVar)
	if err != nil {
		return err
	}

	unitsName, err := syscall.BytePtrFromString("Number")
	if err != nil {
		return err
	}

	ret, _, _ := procAddToDataDefinition.Call(
		c.handle,
		defSimRate,
		uintptr(unsafe.Pointer(datumName)),
		uintptr(unsafe.Pointer(unitsName)),
		datatypeFloat64,
		0, // fEpsilon (stack argument, raw zero bits)
		unusedID,
	)
	if hresultFailed(ret) {
		return fmt.Errorf("SimConnect_AddToDataDefinition failed: %#x", uint32(ret))
	}

	return nil
}

// mapClientEvents registers the rate increment/decrement client events.
func (c *Client) mapClientEvents() error {
	for name, id := range clientEvents {
		namePtr, err := syscall.BytePtrFromString(name)
		if err != nil {
			return err
		}

		ret, _, _ := procMapClientEventToSimEvent.Call(c.handle, id, uintptr(unsafe.Pointer(namePtr)))
		if hresultFailed(ret) {
			return fmt.Errorf("SimConnect_MapClientEventToSimEvent(%s) failed: %#x", name, uint32(ret))
		}
	}

	return nil
}

// SimRate requests and reads the current simulation-rate multiplier. It blocks
// until the simulator answers or RateReadTimeout elapses.
func (c *Client) SimRate() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.simRateLocked()
}

func (c *Client) simRateLocked() (float64, error) {
	if c.handle == 0 {
		return 0, ErrNotConnected
	}

	c.nextRequestID++
	requestID := c.nextRequestID

	ret, _, _ := procRequestDataOnSimObjectType.Call(
		c.handle,
		uintptr(requestID),
		defSimRate,
		0, // radius (0 = user aircraft only)
		simobjectTypeUser,
	)
	if hresultFailed(ret) {
		return 0, fmt.Errorf("SimConnect_RequestDataOnSimObjectType failed: %#x", uint32(ret))
	}

	deadline := time.Now().Add(timeouts.RateReadTimeout)

	for {
		rate, found, err := c.pollDispatch(requestID)
		if err != nil {
			return 0, err
		}
		if found {
			return rate, nil
		}

		if time.Now().After(deadline) {
			return 0, fmt.Errorf("timed out waiting for simulation rate")
		}

		time.Sleep(timeouts.DispatchPollInterval)
	}
}

// pollDispatch drains one message from the SimConnect queue, looking for the
// answer to requestID. found is false when the queue is empty or the message
// was unrelated.
func (c *Client) pollDispatch(requestID uint32) (rate float64, found bool, err error) {
	var (
		data unsafe.Pointer
		size uint32
	)

	ret, _, _ := procGetNextDispatch.Call(
		c.handle,
		uintptr(unsafe.Pointer(&data)),
		uintptr(unsafe.Pointer(&size)),
	)
	if hresultFailed(ret) || data == nil {
		// Empty queue; SimConnect reports E_FAIL when nothing is pending
		return 0, false, nil
	}

	header := (*recvHeader)(data)

	switch header.ID {
	case recvIDNull:
		return 0, false, nil

	case recvIDOpen:
		c.log.Trace("received open confirmation")
		return 0, false, nil

	case recvIDQuit:
		c.log.Info("Simulator announced shutdown")
		return 0, false, ErrSimQuit

	case recvIDException:
		ex := (*recvException)(data)
		return 0, false, fmt.Errorf("simconnect exception %d (sendID %d)", ex.Exception, ex.SendID)

	case recvIDSimobjectDataByType:
		block := (*recvSimobjectData)(data)
		if block.RequestID != requestID {
			c.log.Trace("stale data block dropped",
				slog.Uint64("requestID", uint64(block.RequestID)),
				slog.Uint64("want", uint64(requestID)),
			)
			return 0, false, nil
		}

		value := *(*float64)(unsafe.Add(data, unsafe.Sizeof(recvSimobjectData{})))
		c.log.Trace("simulation rate received", slog.Float64("rate", value))

		return value, true, nil

	default:
		c.log.Trace("dispatch ignored", slog.Uint64("id", uint64(header.ID)))
		return 0, false, nil
	}
}

// SendEvent transmits a named client event to the user aircraft.
func (c *Client) SendEvent(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == 0 {
		return ErrNotConnected
	}

	id, ok := clientEvents[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}

	ret, _, _ := procTransmitClientEvent.Call(
		c.handle,
		objectIDUser,
		id,
		0, // dwData
		groupPriorityHighest,
		eventFlagGroupIDIsPriority,
	)
	if hresultFailed(ret) {
		return fmt.Errorf("SimConnect_TransmitClientEvent(%s) failed: %#x", name, uint32(ret))
	}

	c.log.Debug("Client event transmitted", slog.String("event", name))

	return nil
}

// Close tears down the SimConnect session. Safe to call when not connected.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeLocked()
}

func (c *Client) closeLocked() {
	if c.handle == 0 {
		return
	}

	if ret, _, _ := procClose.Call(c.handle); hresultFailed(ret) {
		c.log.Debug("SimConnect_Close failed", slog.Uint64("hresult", uint64(uint32(ret))))
	}

	c.handle = 0
}
