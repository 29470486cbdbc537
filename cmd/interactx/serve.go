package main

import (
	"errors"
	"fmt"
	"io"

	gliderssh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"

	"pkt.systems/interactx"
	"pkt.systems/interactx/internal/appconfig"
	"pkt.systems/interactx/sshterm"
	"pkt.systems/pslog"
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the line editor demo over SSH",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			signer, err := ensureHostKey(cfg.SSH.HostKeyPath)
			if err != nil {
				return err
			}

			server := &gliderssh.Server{
				Addr: cfg.SSH.Addr,
				Handler: func(sess gliderssh.Session) {
					handleSession(sess, cfg, logger)
				},
			}
			server.AddHostKey(signer)

			logger.Info("ssh demo listening", "addr", cfg.SSH.Addr)
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				_ = server.Close()
				return nil
			case err := <-errCh:
				return err
			}
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config.yaml")
	return cmd
}

func handleSession(sess gliderssh.Session, cfg appconfig.Config, logger pslog.Logger) {
	log := logger.With("remote", sess.RemoteAddr().String())
	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info("ssh session rejected", "reason", "pty required")
		_, _ = io.WriteString(sess, "pty required\n")
		return
	}
	log.Info("ssh session opened", "term", pty.Term, "width", pty.Window.Width)

	tty := sshterm.New(sess, pty.Window.Width, winCh)
	editor, err := interactx.New(interactx.Config{
		Prompt:       cfg.Prompt,
		MultiLine:    cfg.Mode == appconfig.ModeMulti,
		HistoryLimit: cfg.HistoryLimit,
		Completer:    prefixCompleter(cfg.Completions),
		TTY:          tty,
		Logger:       log,
	})
	if err != nil {
		log.Warn("ssh session setup failed", "err", err)
		return
	}

	for {
		line, err := editor.ReadLine()
		if errors.Is(err, interactx.ErrInterrupted) {
			log.Info("ssh session closed", "reason", "interrupt")
			_ = sess.Exit(0)
			return
		}
		if err != nil {
			log.Warn("ssh session read failed", "err", err)
			return
		}
		_, _ = fmt.Fprintf(sess, "input: %q (%d bytes)\r\n", line, len(line))
	}
}
