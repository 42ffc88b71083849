package csr

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	require.Equal(t, "stvec", Stvec.String())
	require.Equal(t, "0x7c0", Number(0x7c0).String())

	require.True(t, Mhartid.ReadOnly())
	require.False(t, Mtvec.ReadOnly())
	require.Equal(t, uint8(1), Stvec.Privilege())
	require.Equal(t, uint8(3), Mtvec.Privilege())

	t.Run("parse", func(t *testing.T) {
		n, err := ParseNumber("MTVEC")
		require.NoError(t, err)
		require.Equal(t, Mtvec, n)

		n, err = ParseNumber("0x105")
		require.NoError(t, err)
		require.Equal(t, Stvec, n)

		_, err = ParseNumber("0x1000")
		require.ErrorContains(t, err, "exceeds 12 bits")

		_, err = ParseNumber("stvecx")
		require.ErrorContains(t, err, "invalid CSR")
	})
}

func TestFileUpdate(t *testing.T) {
	f := NewFile()
	f.WriteCSR(Mie, 0b1010)

	out, err := f.Update(Mie, 0b0101, OpReadSet)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1010), out)
	require.Equal(t, uint64(0b1111), f.ReadCSR(Mie))

	out, err = f.Update(Mie, 0b0011, OpReadClear)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1111), out)
	require.Equal(t, uint64(0b1100), f.ReadCSR(Mie))

	out, err = f.Update(Mie, 42, OpReadWrite)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1100), out)
	require.Equal(t, uint64(42), f.ReadCSR(Mie))

	_, err = f.Update(Mie, 1, Op(0))
	require.ErrorIs(t, err, ErrUnknownOp)
	require.EqualError(t, err, "unknown CSR update mode: 0")
	require.Equal(t, uint64(42), f.ReadCSR(Mie), "failed update must not write")

	t.Run("read-only", func(t *testing.T) {
		f.WriteCSR(Mhartid, 3)
		out, err := f.Update(Mhartid, 0, OpReadSet)
		require.NoError(t, err, "csrr is a read")
		require.Equal(t, uint64(3), out)

		out, err = f.Update(Mhartid, 0, OpReadClear)
		require.NoError(t, err)
		require.Equal(t, uint64(3), out)

		_, err = f.Update(Mhartid, 1, OpReadWrite)
		require.ErrorIs(t, err, ErrReadOnly)
		require.EqualError(t, err, "write to read-only CSR: mhartid")
		_, err = f.Update(Mhartid, 4, OpReadSet)
		require.ErrorIs(t, err, ErrReadOnly)

		// a nonzero mask is a write attempt even when no bit would change
		_, err = f.Update(Mhartid, 0b01, OpReadSet)
		require.ErrorIs(t, err, ErrReadOnly)
		_, err = f.Update(Mhartid, 0b100, OpReadClear)
		require.ErrorIs(t, err, ErrReadOnly)
		require.Equal(t, uint64(3), f.ReadCSR(Mhartid))
	})
}

func TestRegister(t *testing.T) {
	f := NewFile()
	r := Register{Num: Sscratch}
	r.Write(f, 0xdead)
	require.Equal(t, uint64(0xdead), r.Read(f))
	require.Equal(t, uint64(0xdead), f.ReadCSR(Sscratch))
	require.Equal(t, "sscratch", r.String())
}

func TestFileJSON(t *testing.T) {
	f := NewFile()
	f.WriteCSR(Stvec, 0x8000_0001)
	f.WriteCSR(Number(0x7c0), 5)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{"stvec":"0x80000001","0x7c0":"0x5"}`, string(data))

	var g File
	require.NoError(t, json.Unmarshal(data, &g))
	require.Equal(t, f, &g)

	require.ErrorContains(t, json.Unmarshal([]byte(`{"nope":"0x1"}`), &g), "invalid CSR")

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hart.json")
		require.NoError(t, f.WriteFile(path, 0o644))
		loaded, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, f, loaded)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, `{"stvec":"0x80000001","0x7c0":"0x5"}`, string(data))
	})
	t.Run("gzipped file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hart.json.gz")
		require.NoError(t, f.WriteFile(path, 0o644))
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")

		loaded, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, f, loaded)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
