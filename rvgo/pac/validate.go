package pac

import (
	"errors"
	"fmt"
)

// ValidateExceptions checks the numbering contract of E over the declared variants.
// It is meant for tests and debug builds, not for dispatch paths.
func ValidateExceptions[E ComparableException[E]](variants ...E) error {
	return validate(KindException, MaxException[E](),
		func(e E) uint16 { return e.Number() }, ExceptionFromNumber[E], variants)
}

// ValidateInterrupts checks the numbering contract of I over the declared variants.
func ValidateInterrupts[I ComparableInterrupt[I]](variants ...I) error {
	return validate(KindInterrupt, MaxInterrupt[I](),
		func(i I) uint16 { return i.Number() }, InterruptFromNumber[I], variants)
}

// ValidatePriorities checks the numbering contract of P over the declared variants.
func ValidatePriorities[P ComparablePriority[P]](variants ...P) error {
	return validate(KindPriority, MaxPriority[P](),
		func(p P) uint8 { return p.Number() }, PriorityFromNumber[P], variants)
}

// ValidateHartIds checks the numbering contract of H over the declared variants.
func ValidateHartIds[H ComparableHartId[H]](variants ...H) error {
	return validate(KindHartId, MaxHartId[H](),
		func(h H) uint16 { return h.Number() }, HartIdFromNumber[H], variants)
}

// ComparableException is ExceptionNumber on an enum whose variants can be compared.
type ComparableException[E any] interface {
	ExceptionNumber[E]
	comparable
}

type ComparableInterrupt[I any] interface {
	InterruptNumber[I]
	comparable
}

type ComparablePriority[P any] interface {
	PriorityNumber[P]
	comparable
}

type ComparableHartId[H any] interface {
	HartIdNumber[H]
	comparable
}

func validate[V comparable, N uint8 | uint16](kind Kind, maxNumber N, number func(V) N, fromNumber func(N) (V, error), variants []V) error {
	if len(variants) == 0 {
		return fmt.Errorf("no %s variants declared", kind)
	}
	var errs []error
	seen := make(map[N]V, len(variants))
	var highest N
	for _, v := range variants {
		n := number(v)
		if prev, ok := seen[n]; ok {
			if prev == v {
				errs = append(errs, fmt.Errorf("%s %v declared twice", kind, v))
			} else {
				errs = append(errs, fmt.Errorf("%s %v and %v share number %d", kind, prev, v, n))
			}
			continue
		}
		seen[n] = v
		if n > highest {
			highest = n
		}
		if n > maxNumber {
			errs = append(errs, fmt.Errorf("%s %v has number %d above max %d", kind, v, n, maxNumber))
		}
		got, err := fromNumber(n)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %v: number %d does not convert back: %w", kind, v, n, err))
		} else if got != v {
			errs = append(errs, fmt.Errorf("%s number %d converts to %v, expected %v", kind, n, got, v))
		}
	}
	if highest != maxNumber {
		errs = append(errs, fmt.Errorf("%s max %d does not match highest number %d", kind, maxNumber, highest))
	}
	// every unassigned number of the whole domain must be rejected as-is
	for i := 0; i <= int(^N(0)); i++ {
		n := N(i)
		if _, ok := seen[n]; ok {
			continue
		}
		got, err := fromNumber(n)
		if err == nil {
			errs = append(errs, fmt.Errorf("unassigned %s number %d converts to %v", kind, n, got))
			continue
		}
		if rejected, ok := RejectedNumber(err); !ok || rejected != uint64(n) {
			errs = append(errs, fmt.Errorf("%s number %d rejected without returning it: %w", kind, n, err))
		}
	}
	return errors.Join(errs...)
}
