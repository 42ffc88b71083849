// Package csr models control and status registers as numbered locations
// behind an opaque read/write primitive.
package csr

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Tiwalun/riscv/rvgo/riscv"
)

// Number is a 12-bit CSR address.
type Number uint16

const MaxNumber = Number(1<<riscv.CSRAddrBits - 1)

const (
	// supervisor trap setup and handling
	Sstatus  Number = 0x100
	Sie      Number = 0x104
	Stvec    Number = 0x105
	Sscratch Number = 0x140
	Sepc     Number = 0x141
	Scause   Number = 0x142
	Stval    Number = 0x143
	Sip      Number = 0x144
	Satp     Number = 0x180

	// machine trap setup and handling
	Mstatus  Number = 0x300
	Misa     Number = 0x301
	Medeleg  Number = 0x302
	Mideleg  Number = 0x303
	Mie      Number = 0x304
	Mtvec    Number = 0x305
	Mscratch Number = 0x340
	Mepc     Number = 0x341
	Mcause   Number = 0x342
	Mtval    Number = 0x343
	Mip      Number = 0x344

	// machine information registers, read-only
	Mvendorid Number = 0xF11
	Marchid   Number = 0xF12
	Mimpid    Number = 0xF13
	Mhartid   Number = 0xF14
)

var names = map[Number]string{
	Sstatus:   "sstatus",
	Sie:       "sie",
	Stvec:     "stvec",
	Sscratch:  "sscratch",
	Sepc:      "sepc",
	Scause:    "scause",
	Stval:     "stval",
	Sip:       "sip",
	Satp:      "satp",
	Mstatus:   "mstatus",
	Misa:      "misa",
	Medeleg:   "medeleg",
	Mideleg:   "mideleg",
	Mie:       "mie",
	Mtvec:     "mtvec",
	Mscratch:  "mscratch",
	Mepc:      "mepc",
	Mcause:    "mcause",
	Mtval:     "mtval",
	Mip:       "mip",
	Mvendorid: "mvendorid",
	Marchid:   "marchid",
	Mimpid:    "mimpid",
	Mhartid:   "mhartid",
}

var byName = func() map[string]Number {
	out := make(map[string]Number, len(names))
	for n, name := range names {
		out[name] = n
	}
	return out
}()

func (n Number) String() string {
	if name, ok := names[n]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint16(n))
}

// ParseNumber accepts a known CSR name (e.g. "mtvec") or a 0x-prefixed address.
func ParseNumber(s string) (Number, error) {
	if n, ok := byName[strings.ToLower(s)]; ok {
		return n, nil
	}
	v, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, fmt.Errorf("invalid CSR %q: %w", s, err)
	}
	if v > uint64(MaxNumber) {
		return 0, fmt.Errorf("CSR address %#x exceeds %d bits", v, riscv.CSRAddrBits)
	}
	return Number(v), nil
}

// ReadOnly reports whether the address lies in a read-only range (bits 11:10 set).
func (n Number) ReadOnly() bool {
	return (n>>10)&0b11 == 0b11
}

// Privilege is the lowest privilege level that can access the CSR (bits 9:8).
func (n Number) Privilege() uint8 {
	return uint8((n >> 8) & 0b11)
}

// Accessor is the platform primitive to get raw bits in and out of CSRs.
// Implementations are synchronous and bound to a single hart.
type Accessor interface {
	ReadCSR(num Number) uint64
	WriteCSR(num Number, v uint64)
}

// Register binds one numbered CSR location.
type Register struct {
	Num Number
}

func (r Register) Read(acc Accessor) uint64 {
	return acc.ReadCSR(r.Num)
}

func (r Register) Write(acc Accessor, v uint64) {
	acc.WriteCSR(r.Num, v)
}

func (r Register) String() string {
	return r.Num.String()
}
