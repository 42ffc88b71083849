package riscv

//go:generate go run .. gen --config riscv.toml --out numbers_gen.go

const (
	XLen = 64

	// CSR addresses are 12 bits wide
	CSRAddrBits = 12

	// bit XLEN-1 of mcause/scause is set when the trap was caused by an interrupt
	CauseInterruptBit = uint64(1) << (XLen - 1)
	CauseCodeMask     = CauseInterruptBit - 1

	// low two bits of mtvec/stvec hold the trap mode, the rest the base address
	TrapModeMask = uint64(0b11)
)
