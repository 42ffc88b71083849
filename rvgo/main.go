package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/Tiwalun/riscv/rvgo/cmd"
)

func main() {
	var prof interface{ Stop() }

	app := cli.NewApp()
	app.Name = "rvpac"
	app.Usage = "RISC-V numbering contracts and trap CSR tool"
	app.Description = "RISC-V numbering contracts and trap CSR tool"
	app.Flags = []cli.Flag{
		cmd.LogLevelFlag,
		cmd.PProfCPUFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		lvl, err := cmd.ParseLevel(ctx.String(cmd.LogLevelFlag.Name))
		if err != nil {
			return err
		}
		log.Root().SetHandler(cmd.Handler(os.Stderr, lvl))
		if ctx.Bool(cmd.PProfCPUFlag.Name) {
			prof = profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile)
		}
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		if prof != nil {
			prof.Stop()
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmd.GenCommand,
		cmd.TrapVectorCommand,
		cmd.CauseCommand,
	}
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			<-c
			cancel()
			fmt.Println("\r\nExiting...")
		}
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			_, _ = fmt.Fprintf(os.Stderr, "command interrupted")
			os.Exit(130)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v", err)
			os.Exit(1)
		}
	}
}
