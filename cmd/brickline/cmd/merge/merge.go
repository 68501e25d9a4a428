package merge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline"
	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/globals"
	"github.com/agentstation/brickline/internal/wantedfile"
	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/logging"
)

// ExecuteMerge reads both lists, merges them and writes the result.
func ExecuteMerge(cmd *cobra.Command, app application.Application, flags *globals.MergeFlags) error {
	cfg := app.Config()
	logger := app.Logger()

	mode := cfg.CodecMode
	if flags.CodecMode != "" {
		m, err := codec.ParseMode(flags.CodecMode)
		if err != nil {
			return err
		}
		mode = m
	}

	left, err := wantedfile.Read(flags.Left)
	if err != nil {
		return err
	}
	right, err := wantedfile.Read(flags.Right)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), logger)
	res, err := brickline.Merge(ctx, left, right,
		brickline.WithCodecMode(mode),
		brickline.WithLogger(logger),
		brickline.WithListNames(flags.Left, flags.Right),
	)
	if err != nil {
		return err
	}

	if flags.Write == "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Text); err != nil {
			return errors.WrapIO("write", "stdout", err)
		}
	} else {
		if err := confirmOverwrite(cmd, flags.Write, cfg.Force || flags.Force); err != nil {
			return err
		}
		if err := wantedfile.Write(flags.Write, res.Text); err != nil {
			return err
		}
		logger.Info().Str("path", flags.Write).Int("keys", res.Summary.Keys).Msg("wrote merged list")
	}

	return printReport(cmd.ErrOrStderr(), app, flags, res)
}

// confirmOverwrite returns an error wrapping ErrAlreadyExists when path
// exists and the user does not agree to replace it.
func confirmOverwrite(cmd *cobra.Command, path string, force bool) error {
	exists, err := wantedfile.Exists(path)
	if err != nil {
		return err
	}
	if !exists || force {
		return nil
	}
	ok, err := wantedfile.ConfirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), path)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewIOError("write", path, errors.ErrAlreadyExists)
	}
	return nil
}
