package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/Tiwalun/riscv/rvgo/csr"
	"github.com/Tiwalun/riscv/rvgo/register"
)

func TrapVectorRead(ctx *cli.Context) error {
	var v register.TrapVector
	switch {
	case ctx.IsSet(BitsFlag.Name):
		bits, err := hexFlag(ctx, BitsFlag)
		if err != nil {
			return err
		}
		v = register.TrapVectorFromBits(bits)
	case ctx.IsSet(StateFlag.Name):
		r, err := trapVectorCSR(ctx)
		if err != nil {
			return err
		}
		state, err := csr.LoadFile(ctx.Path(StateFlag.Name))
		if err != nil {
			return err
		}
		v = r.Read(state)
	default:
		return errors.New("either --bits or --state is required")
	}
	mode, err := v.TryTrapMode()
	if err != nil {
		return fmt.Errorf("invalid trap vector %s: %w", HexU64(v.Bits()), err)
	}
	log.Debug("decoded trap vector", "bits", HexU64(v.Bits()))
	_, err = fmt.Fprintf(ctx.App.Writer, "address: %#x\nmode: %s\n", v.Address(), mode)
	return err
}

func TrapVectorWrite(ctx *cli.Context) error {
	r, err := trapVectorCSR(ctx)
	if err != nil {
		return err
	}
	addr, err := hexFlag(ctx, AddrFlag)
	if err != nil {
		return err
	}
	mode, err := register.ParseTrapMode(ctx.String(ModeFlag.Name))
	if err != nil {
		return err
	}
	statePath := ctx.Path(StateFlag.Name)
	if statePath == "" {
		return errors.New("--state is required")
	}
	state, err := loadOrNewState(statePath)
	if err != nil {
		return err
	}
	prev := r.Read(state)
	if err := r.Write(state, addr, mode); err != nil {
		return err
	}
	out := ctx.Path(StateOutFlag.Name)
	if out == "" {
		out = statePath
	}
	if err := state.WriteFile(out, OutFilePerm); err != nil {
		return err
	}
	log.Info("wrote trap vector", "csr", r, "prev", HexU64(prev.Bits()), "bits", HexU64(r.Read(state).Bits()), "out", out)
	return nil
}

func loadOrNewState(path string) (*csr.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return csr.NewFile(), nil
	}
	return csr.LoadFile(path)
}

var TrapVectorCommand = &cli.Command{
	Name:  "tvec",
	Usage: "Decode and program trap-vector registers (stvec, mtvec)",
	Subcommands: []*cli.Command{
		{
			Name:        "read",
			Usage:       "Decode a trap-vector register",
			Description: "Decode a trap-vector register, given as raw --bits or read from a CSR --state file.",
			Action:      TrapVectorRead,
			Flags: []cli.Flag{
				BitsFlag,
				StateFlag,
				TrapVectorCSRFlag,
			},
		},
		{
			Name:        "write",
			Usage:       "Encode a base address and mode into a trap-vector register",
			Description: "Encode a base address and mode into a trap-vector register of a CSR state file. A missing state file starts out zeroed.",
			Action:      TrapVectorWrite,
			Flags: []cli.Flag{
				StateFlag,
				StateOutFlag,
				TrapVectorCSRFlag,
				AddrFlag,
				ModeFlag,
			},
		},
	},
}
