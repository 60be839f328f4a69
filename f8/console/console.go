// Package console wires the F8 core together into a runnable unit: the
// CPU, the memory bus, the I/O port bank, the 2102 SRAM chip, and a
// host collaborator, plus the debugger state a UI wraps around them.
package console

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/channelf/f8emu/f8/cartridge"
	"github.com/channelf/f8emu/f8/cpu"
	"github.com/channelf/f8emu/f8/host"
	"github.com/channelf/f8emu/f8/memory"
	"github.com/channelf/f8emu/f8/ports"
	"github.com/channelf/f8emu/f8/sram"
)

// CyclesPerFrame approximates the F8's ~1.79 MHz clock divided by a
// 60Hz video field rate. It has no bearing on CPU semantics — it only
// paces RunUntilFrame for hosts that want a frame-at-a-time loop.
const CyclesPerFrame = 29830

// DebuggerState is the run mode a UI can drive the console through.
type DebuggerState int

const (
	// DebuggerRunning executes continuously.
	DebuggerRunning DebuggerState = iota
	// DebuggerPaused executes nothing until resumed or stepped.
	DebuggerPaused
	// DebuggerStep executes exactly one instruction then pauses.
	DebuggerStep
	// DebuggerStepFrame executes exactly one frame then pauses.
	DebuggerStepFrame
)

// Console owns every piece of F8 state and drives it one step or one
// frame at a time.
type Console struct {
	CPU   *cpu.CPU
	Bus   *memory.Bus
	Ports *ports.Bank
	SRAM  *sram.Chip

	debuggerMutex    sync.RWMutex
	debuggerState    DebuggerState
	stepRequested    bool
	frameRequested   bool
	instructionCount uint64
	frameCount       uint64
}

// New builds a Console with no cartridge inserted and no BIOS loaded;
// callers typically follow with their own bus construction via
// NewWithROMs.
func New(h host.Host) *Console {
	return NewWithROMs(h, nil, nil, nil)
}

// NewWithROMs builds a fully wired Console over the given BIOS-A,
// BIOS-B, and cartridge images (any of which may be nil).
func NewWithROMs(h host.Host, biosA, biosB []byte, cart *cartridge.Cartridge) *Console {
	var cartBytes []byte
	if cart != nil {
		cartBytes = cart.Bytes()
	}

	bus := memory.New(biosA, biosB, cartBytes)
	chip := sram.New()
	bank := ports.New(h, chip)

	return &Console{
		CPU:   cpu.New(bus, bank),
		Bus:   bus,
		Ports: bank,
		SRAM:  chip,
	}
}

// Step executes exactly one instruction and returns the cycles it
// took, tallying instructionCount.
func (c *Console) Step() uint64 {
	cycles := c.CPU.Step()
	c.instructionCount++
	return cycles
}

// RunUntilFrame executes instructions until CyclesPerFrame have
// elapsed, honoring whatever debugger state is currently set.
func (c *Console) RunUntilFrame() {
	switch c.DebuggerState() {
	case DebuggerPaused:
		return
	case DebuggerStep:
		c.runStep()
		return
	case DebuggerStepFrame:
		c.runStepFrame()
		return
	default:
		c.runFrame()
	}
}

func (c *Console) runStep() {
	c.debuggerMutex.Lock()
	if !c.stepRequested {
		c.debuggerMutex.Unlock()
		return
	}
	c.stepRequested = false
	c.debuggerMutex.Unlock()

	pc := c.CPU.PC0
	c.Step()
	slog.Debug("step executed", "pc", fmt.Sprintf("0x%04X", pc), "new_pc", fmt.Sprintf("0x%04X", c.CPU.PC0))

	c.SetDebuggerState(DebuggerPaused)
}

func (c *Console) runStepFrame() {
	c.debuggerMutex.Lock()
	requested := c.frameRequested
	if requested {
		c.frameRequested = false
	}
	c.debuggerMutex.Unlock()

	if !requested {
		return
	}

	c.runFrame()
	c.SetDebuggerState(DebuggerPaused)
}

func (c *Console) runFrame() {
	var total uint64
	for total < CyclesPerFrame {
		total += c.Step()
	}
	c.frameCount++
	if c.frameCount%60 == 0 {
		slog.Debug("frame completed", "frame", c.frameCount, "pc", fmt.Sprintf("0x%04X", c.CPU.PC0))
	}
}

// SetDebuggerState switches run modes.
func (c *Console) SetDebuggerState(state DebuggerState) {
	c.debuggerMutex.Lock()
	defer c.debuggerMutex.Unlock()
	c.debuggerState = state
}

// DebuggerState returns the current run mode.
func (c *Console) DebuggerState() DebuggerState {
	c.debuggerMutex.RLock()
	defer c.debuggerMutex.RUnlock()
	return c.debuggerState
}

// Pause stops execution until Resume, Step, or StepFrame is requested.
func (c *Console) Pause() {
	c.SetDebuggerState(DebuggerPaused)
}

// Resume returns to continuous execution.
func (c *Console) Resume() {
	c.SetDebuggerState(DebuggerRunning)
}

// RequestStep arms a single-instruction step on the next RunUntilFrame.
func (c *Console) RequestStep() {
	c.debuggerMutex.Lock()
	defer c.debuggerMutex.Unlock()
	c.stepRequested = true
	c.debuggerState = DebuggerStep
}

// RequestStepFrame arms a single-frame step on the next RunUntilFrame.
func (c *Console) RequestStepFrame() {
	c.debuggerMutex.Lock()
	defer c.debuggerMutex.Unlock()
	c.frameRequested = true
	c.debuggerState = DebuggerStepFrame
}

// InstructionCount reports the total number of instructions executed.
func (c *Console) InstructionCount() uint64 {
	return c.instructionCount
}

// FrameCount reports the total number of frames completed.
func (c *Console) FrameCount() uint64 {
	return c.frameCount
}
