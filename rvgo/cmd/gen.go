package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/Tiwalun/riscv/rvgo/pacgen"
)

func Gen(ctx *cli.Context) error {
	configPath := ctx.Path(GenConfigFlag.Name)
	cfg, err := pacgen.Load(configPath)
	if err != nil {
		return err
	}
	out := ctx.Path(GenOutFlag.Name)
	if out == "" {
		src, err := pacgen.Generate(cfg)
		if err != nil {
			return fmt.Errorf("failed to generate numbering contracts: %w", err)
		}
		_, err = ctx.App.Writer.Write(src)
		return err
	}
	if err := pacgen.GenerateToFile(cfg, out, OutFilePerm); err != nil {
		return fmt.Errorf("failed to generate numbering contracts: %w", err)
	}
	for _, e := range cfg.Enums {
		log.Info("generated numbering contract", "enum", e.Name, "kind", e.Kind, "variants", len(e.Variants), "max", e.Max())
	}
	return nil
}

var GenCommand = &cli.Command{
	Name:        "gen",
	Usage:       "Generate numbering contract implementations from TOML enum definitions",
	Description: "Generate numbering contract implementations from TOML enum definitions. Each enum gets its numbers, validating conversion and statically computed max number.",
	Action:      Gen,
	Flags: []cli.Flag{
		GenConfigFlag,
		GenOutFlag,
	},
}
