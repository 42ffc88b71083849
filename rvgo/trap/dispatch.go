// Package trap routes raw trap numbers to handlers registered by symbol.
//
// Handler tables are indexed by the raw number, like the hardware vector
// table, and sized from the contract's max number.
package trap

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/Tiwalun/riscv/rvgo/pac"
	"github.com/Tiwalun/riscv/rvgo/register"
)

var ErrNoHandler = errors.New("no handler registered")

// Dispatcher dispatches exceptions and core interrupts read from a cause register.
// Register handlers before the first Dispatch; it is not safe to mutate concurrently.
type Dispatcher[E pac.ExceptionNumber[E], I pac.CoreInterruptNumber[I]] struct {
	log        log.Logger
	exceptions []func(E)
	interrupts []func(I)
}

func NewDispatcher[E pac.ExceptionNumber[E], I pac.CoreInterruptNumber[I]](l log.Logger) *Dispatcher[E, I] {
	if l == nil {
		l = log.Root()
	}
	return &Dispatcher[E, I]{
		log:        l,
		exceptions: make([]func(E), int(pac.MaxException[E]())+1),
		interrupts: make([]func(I), int(pac.MaxInterrupt[I]())+1),
	}
}

func (d *Dispatcher[E, I]) HandleException(e E, fn func(E)) {
	d.exceptions[slot(pac.KindException, e.Number(), len(d.exceptions), pac.ExceptionFromNumber[E])] = fn
}

func (d *Dispatcher[E, I]) HandleInterrupt(i I, fn func(I)) {
	d.interrupts[slot(pac.KindInterrupt, i.Number(), len(d.interrupts), pac.InterruptFromNumber[I])] = fn
}

// Dispatch calls the handler registered for the cause.
// An unrecognized code is returned as a *pac.NumberError, the caller decides whether it is fatal.
func (d *Dispatcher[E, I]) Dispatch(c register.Cause) error {
	if c.IsInterrupt() {
		i, err := register.CauseInterrupt[I](c)
		if err != nil {
			d.log.Warn("unrecognized trap cause", "cause", c, "bits", c.Bits(), "err", err)
			return err
		}
		fn := d.interrupts[i.Number()]
		if fn == nil {
			return fmt.Errorf("%w: interrupt %v", ErrNoHandler, i)
		}
		d.log.Debug("dispatching interrupt", "interrupt", i)
		fn(i)
		return nil
	}
	e, err := register.CauseException[E](c)
	if err != nil {
		d.log.Warn("unrecognized trap cause", "cause", c, "bits", c.Bits(), "err", err)
		return err
	}
	fn := d.exceptions[e.Number()]
	if fn == nil {
		return fmt.Errorf("%w: exception %v", ErrNoHandler, e)
	}
	d.log.Debug("dispatching exception", "exception", e)
	fn(e)
	return nil
}

// ExternalDispatcher dispatches external interrupts claimed from an interrupt controller.
type ExternalDispatcher[X pac.ExternalInterruptNumber[X]] struct {
	log      log.Logger
	handlers []func(X)
}

func NewExternalDispatcher[X pac.ExternalInterruptNumber[X]](l log.Logger) *ExternalDispatcher[X] {
	if l == nil {
		l = log.Root()
	}
	return &ExternalDispatcher[X]{
		log:      l,
		handlers: make([]func(X), int(pac.MaxInterrupt[X]())+1),
	}
}

func (d *ExternalDispatcher[X]) Handle(x X, fn func(X)) {
	d.handlers[slot(pac.KindInterrupt, x.Number(), len(d.handlers), pac.InterruptFromNumber[X])] = fn
}

// Dispatch calls the handler of a claimed source number.
func (d *ExternalDispatcher[X]) Dispatch(claimed uint16) error {
	x, err := pac.InterruptFromNumber[X](claimed)
	if err != nil {
		d.log.Warn("unrecognized external interrupt", "number", claimed, "err", err)
		return err
	}
	fn := d.handlers[x.Number()]
	if fn == nil {
		return fmt.Errorf("%w: external interrupt %v", ErrNoHandler, x)
	}
	d.log.Debug("dispatching external interrupt", "source", x)
	fn(x)
	return nil
}

// slot panics when a variant breaks its contract by exceeding the max number,
// or when the value is not a declared variant and its handler could never run.
func slot[V any](kind pac.Kind, n uint16, size int, fromNumber func(uint16) (V, error)) int {
	if int(n) >= size {
		panic(fmt.Errorf("%s number %d exceeds max %d", kind, n, size-1))
	}
	if _, err := fromNumber(n); err != nil {
		panic(fmt.Errorf("no %s variant to handle: %w", kind, err))
	}
	return int(n)
}
