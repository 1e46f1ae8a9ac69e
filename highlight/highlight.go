// Package highlight turns source text into styled spans using a language's
// grammar, highlight query and current theme mapping.
package highlight

import (
	"context"
	"errors"

	"github.com/arjunmahishi/tshl/language"
	"github.com/arjunmahishi/tshl/types"
)

// Spans parses source and returns the highlighted regions in document order.
//
// When captures overlap, the first capture to claim a byte wins, so the
// returned spans never overlap.
func Spans(ctx context.Context, lang *language.Language, source []byte) ([]types.Span, error) {
	if lang == nil {
		return nil, errors.New("language is required")
	}
	if len(source) == 0 {
		return nil, nil
	}

	tree, err := lang.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var (
		spans   []types.Span
		claimed uint32
	)
	lang.HighlightQuery().Captures(tree, source, func(c language.Capture) bool {
		start, end := c.Node.StartByte(), c.Node.EndByte()
		if start < claimed || start == end {
			return true
		}
		claimed = end

		sp, ep := c.Node.StartPoint(), c.Node.EndPoint()
		spans = append(spans, types.Span{
			StartByte: start,
			EndByte:   end,
			Capture:   c.Name,
			Text:      c.Node.Content(source),
			Range: types.Range{
				Start: types.Position{Line: int(sp.Row) + 1, Column: int(sp.Column) + 1},
				End:   types.Position{Line: int(ep.Row) + 1, Column: int(ep.Column) + 1},
			},
		})
		return true
	})

	return spans, nil
}
