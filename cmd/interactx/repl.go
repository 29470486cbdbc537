package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/interactx"
	"pkt.systems/interactx/internal/appconfig"
	"pkt.systems/pslog"
)

func newReplCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read lines from the local terminal and echo them back",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			sess, err := interactx.New(interactx.Config{
				Prompt:       cfg.Prompt,
				MultiLine:    cfg.Mode == appconfig.ModeMulti,
				HistoryLimit: cfg.HistoryLimit,
				HistoryFile:  cfg.HistoryFile,
				Completer:    prefixCompleter(cfg.Completions),
				Logger:       logger,
			})
			if err != nil {
				return err
			}
			for {
				line, err := sess.ReadLine()
				if errors.Is(err, interactx.ErrInterrupted) {
					if cfg.HistoryFile != "" {
						if err := sess.SaveHistory(cfg.HistoryFile); err != nil {
							return err
						}
					}
					return nil
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "input: %q (%d bytes)\n", line, len(line)); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config.yaml")
	return cmd
}

// prefixCompleter serves the static candidate list from the config,
// filtered to the current line's prefix.
func prefixCompleter(candidates []string) interactx.Completer {
	if len(candidates) == 0 {
		return nil
	}
	return interactx.CompleterFunc(func(line []byte) [][]byte {
		var out [][]byte
		for _, candidate := range candidates {
			if strings.HasPrefix(candidate, string(line)) {
				out = append(out, []byte(candidate))
			}
		}
		return out
	})
}
