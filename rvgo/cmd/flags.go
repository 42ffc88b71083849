package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/Tiwalun/riscv/rvgo/register"
)

const envVarPrefix = "RVPAC"

func prefixEnvVars(name string) []string {
	return []string{envVarPrefix + "_" + name}
}

var OutFilePerm = os.FileMode(0o644)

var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "log level: trace, debug, info, warn or error",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "enable pprof cpu profiling, written to the working directory",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}
	GenConfigFlag = &cli.PathFlag{
		Name:      "config",
		Usage:     "TOML file with the enum definitions",
		TakesFile: true,
		Required:  true,
	}
	GenOutFlag = &cli.PathFlag{
		Name:      "out",
		Usage:     "path of the generated Go file, stdout if empty",
		TakesFile: true,
	}
	StateFlag = &cli.PathFlag{
		Name:      "state",
		Usage:     "JSON CSR state file of one hart, optionally gzipped",
		TakesFile: true,
		EnvVars:   prefixEnvVars("STATE"),
	}
	StateOutFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "where to write the updated CSR state, defaults to --state",
		TakesFile: true,
	}
	TrapVectorCSRFlag = &cli.StringFlag{
		Name:  "csr",
		Usage: "trap-vector register: stvec or mtvec",
		Value: "stvec",
	}
	BitsFlag = &cli.StringFlag{
		Name:  "bits",
		Usage: "raw register bits, 0x-prefixed hex",
	}
	AddrFlag = &cli.StringFlag{
		Name:     "addr",
		Usage:    "trap handler base address, 0x-prefixed hex, 4-byte aligned",
		Required: true,
	}
	ModeFlag = &cli.StringFlag{
		Name:  "mode",
		Usage: "trap mode: direct or vectored",
		Value: "direct",
	}
)

func hexFlag(ctx *cli.Context, flag *cli.StringFlag) (uint64, error) {
	v, err := hexutil.DecodeUint64(ctx.String(flag.Name))
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", flag.Name, err)
	}
	return v, nil
}

func trapVectorCSR(ctx *cli.Context) (register.TrapVectorCSR, error) {
	switch name := ctx.String(TrapVectorCSRFlag.Name); name {
	case "stvec":
		return register.Stvec, nil
	case "mtvec":
		return register.Mtvec, nil
	default:
		return register.TrapVectorCSR{}, fmt.Errorf("not a trap-vector CSR: %q", name)
	}
}
