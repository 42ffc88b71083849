package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Tiwalun/riscv/rvgo/register"
	"github.com/Tiwalun/riscv/rvgo/riscv"
)

func Cause(ctx *cli.Context) error {
	bits, err := hexFlag(ctx, CauseBitsFlag)
	if err != nil {
		return err
	}
	c := register.CauseFromBits(bits)
	var name fmt.Stringer
	if c.IsInterrupt() {
		name, err = register.CauseInterrupt[riscv.Interrupt](c)
	} else {
		name, err = register.CauseException[riscv.Exception](c)
	}
	if err != nil {
		return fmt.Errorf("cause %s: %w", HexU64(bits), err)
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s %s\n", c, name)
	return err
}

var CauseBitsFlag = &cli.StringFlag{
	Name:     "bits",
	Usage:    "raw mcause/scause bits, 0x-prefixed hex",
	Required: true,
}

var CauseCommand = &cli.Command{
	Name:        "cause",
	Usage:       "Decode a trap cause with the standard RISC-V numbering",
	Description: "Decode a raw mcause/scause word into the standard RISC-V exception or core interrupt.",
	Action:      Cause,
	Flags: []cli.Flag{
		CauseBitsFlag,
	},
}
