package register

import (
	"errors"
	"fmt"
	"math"

	"github.com/Tiwalun/riscv/rvgo/csr"
	"github.com/Tiwalun/riscv/rvgo/pac"
	"github.com/Tiwalun/riscv/rvgo/riscv"
)

var ErrCauseKind = errors.New("trap cause of the other kind")

// Cause is a snapshot of a trap cause register (mcause or scause).
type Cause struct {
	bits uint64
}

func CauseFromBits(bits uint64) Cause {
	return Cause{bits: bits}
}

func NewCause(interrupt bool, code uint64) Cause {
	bits := code & riscv.CauseCodeMask
	if interrupt {
		bits |= riscv.CauseInterruptBit
	}
	return Cause{bits: bits}
}

func (c Cause) Bits() uint64 {
	return c.bits
}

// IsInterrupt reports whether the trap was caused by an interrupt.
func (c Cause) IsInterrupt() bool {
	return c.bits&riscv.CauseInterruptBit != 0
}

// IsException reports whether the trap was caused by an exception.
func (c Cause) IsException() bool {
	return !c.IsInterrupt()
}

// Code returns the exception or interrupt code, without the interrupt bit.
func (c Cause) Code() uint64 {
	return c.bits & riscv.CauseCodeMask
}

func (c Cause) String() string {
	if c.IsInterrupt() {
		return fmt.Sprintf("interrupt %d", c.Code())
	}
	return fmt.Sprintf("exception %d", c.Code())
}

// number narrows the code to a contract number. Codes that do not fit are
// rejected with the full code.
func (c Cause) number(kind pac.Kind) (uint16, error) {
	code := c.Code()
	if code > math.MaxUint16 {
		return 0, pac.NewNumberError(kind, code)
	}
	return uint16(code), nil
}

// CauseException converts an exception cause to the target exception enum.
func CauseException[E pac.ExceptionNumber[E]](c Cause) (E, error) {
	var zero E
	if c.IsInterrupt() {
		return zero, fmt.Errorf("%w: %s", ErrCauseKind, c)
	}
	n, err := c.number(pac.KindException)
	if err != nil {
		return zero, err
	}
	return pac.ExceptionFromNumber[E](n)
}

// CauseInterrupt converts an interrupt cause to the target core interrupt enum.
// Only core interrupts are reported through the cause register.
func CauseInterrupt[I pac.CoreInterruptNumber[I]](c Cause) (I, error) {
	var zero I
	if c.IsException() {
		return zero, fmt.Errorf("%w: %s", ErrCauseKind, c)
	}
	n, err := c.number(pac.KindInterrupt)
	if err != nil {
		return zero, err
	}
	return pac.InterruptFromNumber[I](n)
}

type CauseCSR struct {
	csr.Register
}

var (
	Scause = CauseCSR{csr.Register{Num: csr.Scause}}
	Mcause = CauseCSR{csr.Register{Num: csr.Mcause}}
)

func (r CauseCSR) Read(acc csr.Accessor) Cause {
	return Cause{bits: r.Register.Read(acc)}
}

// Write sets the cause register, as trap entry does in an emulator.
func (r CauseCSR) Write(acc csr.Accessor, c Cause) {
	r.Register.Write(acc, c.bits)
}

// Mhartid is the read-only hart id register.
var Mhartid = csr.Register{Num: csr.Mhartid}

// HartId reads mhartid and converts it to the target hart enum.
func HartId[H pac.HartIdNumber[H]](acc csr.Accessor) (H, error) {
	id := Mhartid.Read(acc)
	if id > math.MaxUint16 {
		var zero H
		return zero, pac.NewNumberError(pac.KindHartId, id)
	}
	return pac.HartIdFromNumber[H](uint16(id))
}
