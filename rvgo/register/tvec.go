// Package register models RISC-V trap CSRs as immutable snapshots over raw bits.
package register

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tiwalun/riscv/rvgo/csr"
	"github.com/Tiwalun/riscv/rvgo/riscv"
)

var (
	ErrReservedTrapMode  = errors.New("reserved trap mode")
	ErrMisalignedAddress = errors.New("trap vector base address not 4-byte aligned")
)

// TrapMode is the dispatch mode of a trap vector.
type TrapMode uint8

const (
	// Direct sends all traps to the base address.
	Direct TrapMode = 0
	// Vectored sends interrupts to base + 4*cause.
	Vectored TrapMode = 1
)

func (m TrapMode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Vectored:
		return "vectored"
	}
	return fmt.Sprintf("reserved(%d)", uint8(m))
}

func (m TrapMode) valid() bool {
	return m == Direct || m == Vectored
}

func ParseTrapMode(s string) (TrapMode, error) {
	switch strings.ToLower(s) {
	case "direct":
		return Direct, nil
	case "vectored":
		return Vectored, nil
	}
	return 0, fmt.Errorf("unknown trap mode %q", s)
}

// TrapVector is a snapshot of a trap-vector base-address register (stvec or mtvec).
// The raw bits are the only state; address and mode are derived from them.
type TrapVector struct {
	bits uint64
}

func TrapVectorFromBits(bits uint64) TrapVector {
	return TrapVector{bits: bits}
}

// NewTrapVector encodes addr and mode. See EncodeTrapVector.
func NewTrapVector(addr uint64, mode TrapMode) TrapVector {
	return TrapVector{bits: EncodeTrapVector(addr, mode)}
}

// EncodeTrapVector packs a base address and a mode into raw register bits.
// addr must be 4-byte aligned: its low two bits are dropped.
func EncodeTrapVector(addr uint64, mode TrapMode) uint64 {
	return (addr &^ riscv.TrapModeMask) | (uint64(mode) & riscv.TrapModeMask)
}

// Bits returns the contents of the register as raw bits.
func (v TrapVector) Bits() uint64 {
	return v.bits
}

// Address returns the trap-vector base address.
func (v TrapVector) Address() uint64 {
	return v.bits &^ riscv.TrapModeMask
}

// TrapMode returns the trap-vector mode.
// It panics on the reserved encodings 2 and 3, which hardware never reports.
func (v TrapVector) TrapMode() TrapMode {
	mode, err := v.TryTrapMode()
	if err != nil {
		panic(err)
	}
	return mode
}

// TryTrapMode is like TrapMode, but returns ErrReservedTrapMode for reserved encodings.
// Use it on snapshots that did not come from hardware.
func (v TrapVector) TryTrapMode() (TrapMode, error) {
	mode := TrapMode(v.bits & riscv.TrapModeMask)
	if !mode.valid() {
		return 0, fmt.Errorf("%w: %d", ErrReservedTrapMode, uint8(mode))
	}
	return mode, nil
}

func (v TrapVector) String() string {
	mode := TrapMode(v.bits & riscv.TrapModeMask)
	return fmt.Sprintf("%#x (%s)", v.Address(), mode)
}

// TrapVectorCSR is a numbered trap-vector register location.
type TrapVectorCSR struct {
	csr.Register
}

var (
	Stvec = TrapVectorCSR{csr.Register{Num: csr.Stvec}}
	Mtvec = TrapVectorCSR{csr.Register{Num: csr.Mtvec}}
)

// Read takes a snapshot of the register.
func (r TrapVectorCSR) Read(acc csr.Accessor) TrapVector {
	return TrapVector{bits: r.Register.Read(acc)}
}

// Write encodes addr and mode and writes them to the register.
// A misaligned address or a reserved mode is rejected and nothing is written.
func (r TrapVectorCSR) Write(acc csr.Accessor, addr uint64, mode TrapMode) error {
	if addr&riscv.TrapModeMask != 0 {
		return fmt.Errorf("%s %#x: %w", r, addr, ErrMisalignedAddress)
	}
	if !mode.valid() {
		return fmt.Errorf("%s: %w: %d", r, ErrReservedTrapMode, uint8(mode))
	}
	r.Register.Write(acc, EncodeTrapVector(addr, mode))
	return nil
}
