package language

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Query is a highlight query compiled against one grammar. It is read-only
// after construction and safe to share between goroutines.
type Query struct {
	query        *sitter.Query
	captureNames []string
}

// NewQuery compiles a tree-sitter query string.
func NewQuery(src string, grammar *sitter.Language) (*Query, error) {
	q, err := sitter.NewQuery([]byte(src), grammar)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	captureCount := int(q.CaptureCount())
	captureNames := make([]string, captureCount)
	for i := 0; i < captureCount; i++ {
		captureNames[i] = q.CaptureNameForId(uint32(i))
	}

	return &Query{
		query:        q,
		captureNames: captureNames,
	}, nil
}

// CaptureNames returns the capture names in capture-id order.
func (q *Query) CaptureNames() []string {
	names := make([]string, len(q.captureNames))
	copy(names, q.captureNames)
	return names
}

// Capture is a single node claimed by a query capture.
type Capture struct {
	Name string
	Node *sitter.Node
}

// Captures runs the query over a tree and calls fn for each capture in
// document order. Iteration stops when fn returns false.
func (q *Query) Captures(tree *sitter.Tree, source []byte, fn func(Capture) bool) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q.query, tree.RootNode())

	for {
		match, index, ok := cursor.NextCapture()
		if !ok {
			return
		}
		match = cursor.FilterPredicates(match, source)
		if int(index) >= len(match.Captures) {
			continue
		}
		c := match.Captures[index]
		if !fn(Capture{Name: q.captureName(c.Index), Node: c.Node}) {
			return
		}
	}
}

func (q *Query) captureName(index uint32) string {
	if int(index) >= len(q.captureNames) {
		return fmt.Sprintf("capture_%d", index)
	}
	return q.captureNames[index]
}

// parse parses source with a fresh parser; parsers are not shared.
func parse(ctx context.Context, grammar *sitter.Language, source []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(grammar)

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return tree, nil
}
