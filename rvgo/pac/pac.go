// Package pac defines the numbering contracts that peripheral access packages
// implement on their enums of exceptions, interrupts, priority levels and
// HART IDs.
//
// Each contract is a generic interface over the enum type itself. FromNumber
// and the Max* methods ignore their receiver: they are type-level functions,
// reachable without a value through the package-level helpers such as
// ExceptionFromNumber and MaxException.
//
// The contracts cannot be checked by the compiler. An implementation must
// guarantee that:
//   - every variant maps to a distinct number,
//   - the number of a variant never changes at runtime,
//   - every number is less than or equal to the Max* value,
//   - the Max* value is the highest number actually assigned.
//
// ValidateExceptions and friends check these rules over a declared variant set,
// probing every number of the contract's domain.
package pac

// ExceptionNumber is implemented by enums of target-specific exception numbers.
type ExceptionNumber[E any] interface {
	// Number converts an exception to its corresponding number.
	Number() uint16
	// FromNumber tries to convert a number to a valid exception.
	// If the conversion fails, it returns a *NumberError holding the number.
	FromNumber(n uint16) (E, error)
	// MaxExceptionNumber is the highest number assigned to an exception.
	MaxExceptionNumber() uint16
}

// InterruptNumber is implemented by enums of target-specific interrupt numbers.
type InterruptNumber[I any] interface {
	// Number converts an interrupt source to its corresponding number.
	Number() uint16
	// FromNumber tries to convert a number to a valid interrupt source.
	// If the conversion fails, it returns a *NumberError holding the number.
	FromNumber(n uint16) (I, error)
	// MaxInterruptNumber is the highest number assigned to an interrupt source.
	MaxInterruptNumber() uint16
}

// CoreInterruptNumber marks interrupt enums whose numbers are read from the
// mcause/scause CSR. Usually, vectored mode is only available for core interrupts.
type CoreInterruptNumber[I any] interface {
	InterruptNumber[I]
	CoreInterrupt()
}

// ExternalInterruptNumber marks interrupt enums of external sources (GPIO, UART, SPI...).
// These are not read from mcause: the core sees a single external interrupt,
// and an additional peripheral (e.g. a PLIC) multiplexes the sources.
type ExternalInterruptNumber[I any] interface {
	InterruptNumber[I]
	ExternalInterrupt()
}

// PriorityNumber is implemented by enums of priority levels.
type PriorityNumber[P any] interface {
	// Number converts a priority level to its corresponding number.
	Number() uint8
	// FromNumber tries to convert a number to a valid priority level.
	// If the conversion fails, it returns a *NumberError holding the number.
	FromNumber(n uint8) (P, error)
	// MaxPriorityNumber is the number assigned to the highest priority level.
	MaxPriorityNumber() uint8
}

// HartIdNumber is implemented by enums of HART identifiers.
type HartIdNumber[H any] interface {
	// Number converts a HART ID to its corresponding number.
	Number() uint16
	// FromNumber tries to convert a number to a valid HART ID.
	// If the conversion fails, it returns a *NumberError holding the number.
	FromNumber(n uint16) (H, error)
	// MaxHartIdNumber is the highest number assigned to a HART.
	MaxHartIdNumber() uint16
}

func ExceptionFromNumber[E ExceptionNumber[E]](n uint16) (E, error) {
	var zero E
	return zero.FromNumber(n)
}

func MaxException[E ExceptionNumber[E]]() uint16 {
	var zero E
	return zero.MaxExceptionNumber()
}

func InterruptFromNumber[I InterruptNumber[I]](n uint16) (I, error) {
	var zero I
	return zero.FromNumber(n)
}

func MaxInterrupt[I InterruptNumber[I]]() uint16 {
	var zero I
	return zero.MaxInterruptNumber()
}

func PriorityFromNumber[P PriorityNumber[P]](n uint8) (P, error) {
	var zero P
	return zero.FromNumber(n)
}

func MaxPriority[P PriorityNumber[P]]() uint8 {
	var zero P
	return zero.MaxPriorityNumber()
}

func HartIdFromNumber[H HartIdNumber[H]](n uint16) (H, error) {
	var zero H
	return zero.FromNumber(n)
}

func MaxHartId[H HartIdNumber[H]]() uint16 {
	var zero H
	return zero.MaxHartIdNumber()
}
