package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"multi-address/abi"
	"multi-address/address"
	"multi-address/batch"
	"multi-address/config"
	"multi-address/misc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports its error on the command's stderr.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "multi-address",
		Short:         "Convert addresses between the checksummed 0x and XKO forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				misc.Error("Load config", misc.Fields("path", cfgPath, "reason", err))
				return err
			}
			misc.SetOutput(cmd.ErrOrStderr())
			misc.SetLevel(cfg.LogLevel)
			misc.Debug("Load config", misc.Fields("path", cfgPath, "form", cfg.Form, "workers", cfg.Batch.Workers))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "./config.toml", "path to the TOML config file")

	root.AddCommand(
		newConvertCmd("evm", "Convert addresses to the checksummed 0x form", address.ToEvmAddress),
		newConvertCmd("xko", "Convert 0x or bare hex addresses to the checksummed XKO form", address.FromEvmAddress),
		newConvertCmd("abi", "Encode addresses as 32 byte ABI words", abi.EncodeAddress),
		newBatchCmd(),
	)
	return root
}

func newConvertCmd(use, short string, convert func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <address>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, arg := range args {
				out, err := convert(arg)
				if err != nil {
					failed++
					misc.Error("Convert address", misc.Fields("input", arg, "kind", address.KindOf(err), "reason", err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d addresses failed", failed, len(args))
			}
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	var file, form string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert newline separated addresses from a file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()
			if form == "" {
				form = cfg.Form
			}
			f, err := batch.ParseForm(form)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				fp, err := os.Open(file)
				if err != nil {
					misc.Error("Open batch input", misc.Fields("file", file, "reason", err))
					return err
				}
				defer fp.Close()
				in = fp
			}

			results, err := batch.Convert(cmd.Context(), in, f, batch.Options{
				Workers:         cfg.Batch.Workers,
				ContinueOnError: cfg.Batch.ContinueOnError,
			})
			if err != nil {
				misc.Error("Batch convert", misc.Fields("form", f, "reason", err))
				return err
			}
			for _, res := range results {
				if res.Err != nil {
					misc.Warn("Batch convert", misc.Fields("line", res.Line, "input", res.Input, "kind", address.KindOf(res.Err), "reason", res.Err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			}
			failed := batch.Failed(results)
			misc.Info("Batch report", misc.Fields("form", f, "total", len(results), "failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d lines failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file, stdin when empty or -")
	cmd.Flags().StringVar(&form, "form", "", "target form: evm or xko (default from config)")
	return cmd
}
