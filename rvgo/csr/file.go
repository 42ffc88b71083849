package csr

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethereum-optimism/optimism/op-service/ioutil"
)

// Op is the update mode of a CSR instruction, the low two bits of funct3.
type Op uint8

const (
	OpReadWrite Op = 1 // ?01 = CSRRW(I)
	OpReadSet   Op = 2 // ?10 = CSRRS(I)
	OpReadClear Op = 3 // ?11 = CSRRC(I)
)

var (
	ErrUnknownOp = errors.New("unknown CSR update mode")
	ErrReadOnly  = errors.New("write to read-only CSR")
)

// File is a software CSR file for a single hart, for use off-target.
// It is not safe for concurrent use.
type File struct {
	regs [MaxNumber + 1]uint64
}

var _ Accessor = (*File)(nil)

func NewFile() *File {
	return &File{}
}

func (f *File) ReadCSR(num Number) uint64 {
	return f.regs[num&MaxNumber]
}

func (f *File) WriteCSR(num Number, v uint64) {
	f.regs[num&MaxNumber] = v
}

// Update applies a CSR instruction and returns the previous value.
// Set and clear with a zero mask do not write, so only they are allowed on read-only CSRs.
func (f *File) Update(num Number, mask uint64, op Op) (out uint64, err error) {
	num &= MaxNumber
	out = f.regs[num]
	var v uint64
	switch op {
	case OpReadWrite:
		v = mask
	case OpReadSet:
		v = out | mask
	case OpReadClear:
		v = out &^ mask
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}
	if num.ReadOnly() && (op == OpReadWrite || mask != 0) {
		return 0, fmt.Errorf("%w: %s", ErrReadOnly, num)
	}
	f.regs[num] = v
	return out, nil
}

func (f *File) MarshalJSON() ([]byte, error) {
	out := make(map[string]hexutil.Uint64)
	for i, v := range f.regs {
		if v != 0 {
			out[Number(i).String()] = hexutil.Uint64(v)
		}
	}
	return json.Marshal(out)
}

func (f *File) UnmarshalJSON(data []byte) error {
	var in map[string]hexutil.Uint64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	*f = File{}
	for _, k := range keys {
		num, err := ParseNumber(k)
		if err != nil {
			return err
		}
		f.regs[num] = uint64(in[k])
	}
	return nil
}

// LoadFile reads a JSON CSR file. Paths ending in .gz are decompressed.
func LoadFile(path string) (*File, error) {
	r, err := ioutil.OpenDecompressed(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSR file %q: %w", path, err)
	}
	defer r.Close()
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode CSR file %q: %w", path, err)
	}
	return &f, nil
}

// WriteFile replaces the file at path atomically. Paths ending in .gz are compressed.
func (f *File) WriteFile(path string, perm os.FileMode) (err error) {
	w, err := ioutil.NewAtomicWriterCompressed(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create CSR file %q: %w", path, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write CSR file %q: %w", path, cerr)
		}
	}()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode CSR file %q: %w", path, err)
	}
	return nil
}
