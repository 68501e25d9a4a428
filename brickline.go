// Package brickline merges Bricklink wanted lists.
//
// A wanted list travels as an XML INVENTORY payload. Merge decodes two of
// them, reconciles the items by (item id, color) with the primary list
// winning on metadata, and encodes the result:
//
//	res, err := brickline.Merge(ctx, primaryXML, secondaryXML)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Summary)
//	os.WriteFile("merged.xml", []byte(res.Text), 0o644)
//
// The building blocks live in pkg/codec, pkg/reconcile and pkg/stats.
package brickline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/constants"
	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/logging"
	"github.com/agentstation/brickline/pkg/reconcile"
	"github.com/agentstation/brickline/pkg/stats"
	"github.com/agentstation/brickline/pkg/wanted"
)

// MergeResult is the outcome of a Merge.
type MergeResult struct {
	// Text is the encoded merged payload.
	Text string
	// List is the merged list, ordered by key.
	List wanted.List

	Summary reconcile.Summary
	Origins map[wanted.Key]reconcile.Origin

	PrimaryStats   stats.Statistics
	SecondaryStats stats.Statistics
	MergedStats    stats.Statistics
}

type decoded struct {
	list  wanted.List
	stats stats.Statistics
}

// Merge decodes both payloads concurrently, reconciles them and encodes the
// merged list. A decode error is wrapped in an *errors.SideError naming the
// list it came from.
func Merge(ctx context.Context, primaryText, secondaryText string, opts ...Option) (*MergeResult, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	reconciler, err := reconcile.New(reconcile.WithAccumulator(o.accumulate))
	if err != nil {
		return nil, err
	}
	encoder, err := codec.NewEncoder(codec.WithMode(o.mode))
	if err != nil {
		return nil, err
	}

	ctx = logging.WithLogger(ctx, o.logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, "merge")
	logger := logging.FromContext(ctx)

	var primary, secondary decoded
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		primary, err = decodeSide(gctx, constants.SidePrimary, o.primaryName, primaryText)
		return err
	})
	g.Go(func() (err error) {
		secondary, err = decodeSide(gctx, constants.SideSecondary, o.secondaryName, secondaryText)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("decode failed")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	res := reconciler.Reconcile(primary.list, secondary.list)
	text, err := encoder.Encode(res.List)
	if err != nil {
		logger.Error().Err(err).Msg("encode failed")
		return nil, err
	}

	logger.Info().
		Int("primary_items", res.Summary.PrimaryItems).
		Int("secondary_items", res.Summary.SecondaryItems).
		Int("matched", res.Summary.Matched).
		Int("added", res.Summary.Added).
		Int("collapsed", res.Summary.Collapsed).
		Int("keys", res.Summary.Keys).
		Stringer("mode", encoder.Mode()).
		Msg("merged wanted lists")

	return &MergeResult{
		Text:           text,
		List:           res.List,
		Summary:        res.Summary,
		Origins:        res.Origins,
		PrimaryStats:   primary.stats,
		SecondaryStats: secondary.stats,
		MergedStats:    stats.Aggregate(res.List),
	}, nil
}

func decodeSide(ctx context.Context, side, name, text string) (decoded, error) {
	if err := ctx.Err(); err != nil {
		return decoded{}, canceled(err)
	}
	logger := logging.FromContext(logging.WithList(ctx, side, name))

	list, s, err := codec.DecodeWithStatistics(text)
	if err != nil {
		return decoded{}, errors.WrapSide(side, err)
	}
	logger.Debug().
		Int("items", s.TotalItems).
		Int("parts", s.TotalParts).
		Msg("decoded wanted list")
	return decoded{list: list, stats: s}, nil
}

// Stats decodes text and returns its statistics.
func Stats(text string) (stats.Statistics, error) {
	_, s, err := codec.DecodeWithStatistics(text)
	if err != nil {
		return stats.Statistics{}, err
	}
	return s, nil
}

// Format decodes text and encodes it again, giving the canonical form of the
// payload: declaration, no whitespace between elements, fields in wire order.
// Item order is kept.
func Format(text string, opts ...Option) (string, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return "", err
	}
	encoder, err := codec.NewEncoder(codec.WithMode(o.mode))
	if err != nil {
		return "", err
	}
	list, err := codec.Decode(text)
	if err != nil {
		return "", err
	}
	return encoder.Encode(list)
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
}
