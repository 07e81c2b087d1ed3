package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

// documentStore holds the most recent text for every open document, the
// editor-session state an LSP server keeps in memory; it is never
// persisted, and is unrelated to anything the parser itself stores.
type documentStore struct {
	mu   sync.Mutex
	docs map[string]string
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]string)}
}

func (d *documentStore) put(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = text
}

func (d *documentStore) get(uri string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.docs[uri]
	return t, ok
}

func (d *documentStore) remove(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

// handleDocumentSymbol reports one DocumentSymbol per annotated formula,
// named "dialect(name, role)" and positioned at its origin, plus a child
// symbol per functor/predicate name it contributes to the problem's
// overall symbol set.
func (s *Server) handleDocumentSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentSymbolParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	text, ok := s.docs.get(string(params.TextDocument.URI))
	if !ok {
		return reply(ctx, []protocol.DocumentSymbol{}, nil)
	}
	problem, err := parser.ParseProblem(text)
	if err != nil {
		return reply(ctx, []protocol.DocumentSymbol{}, nil)
	}

	symbols := make([]protocol.DocumentSymbol, 0, len(problem.Formulas))
	for _, f := range problem.Formulas {
		rng := rangeFor(f)
		sym := protocol.DocumentSymbol{
			Name:           fmt.Sprintf("%s(%s, %s)", f.Dialect(), f.FormulaName(), f.FormulaRole().String()),
			Kind:           protocol.SymbolKindFunction,
			Range:          rng,
			SelectionRange: rng,
		}
		for _, name := range ast.Symbols(f).Slice() {
			sym.Children = append(sym.Children, protocol.DocumentSymbol{
				Name:           name,
				Kind:           protocol.SymbolKindConstant,
				Range:          rng,
				SelectionRange: rng,
			})
		}
		symbols = append(symbols, sym)
	}
	return reply(ctx, symbols, nil)
}

// handleFormatting replaces the whole document with the canonical
// pretty-printed form of its parse, or leaves the document untouched (no
// edits) if it does not parse.
func (s *Server) handleFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentFormattingParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	text, ok := s.docs.get(string(params.TextDocument.URI))
	if !ok {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	problem, err := parser.ParseProblem(text)
	if err != nil {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	edits := []protocol.TextEdit{{
		Range:   wholeDocumentRange(text),
		NewText: problem.String(),
	}}
	return reply(ctx, edits, nil)
}

func rangeFor(n ast.Node) protocol.Range {
	start := n.Start()
	end := n.End()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(max0(start.Line - 1)), Character: uint32(max0(start.Column - 1))},
		End:   protocol.Position{Line: uint32(max0(end.Line - 1)), Character: uint32(max0(end.Column))},
	}
}

func wholeDocumentRange(text string) protocol.Range {
	lines := 0
	lastLineLen := 0
	for _, r := range text {
		if r == '\n' {
			lines++
			lastLineLen = 0
			continue
		}
		lastLineLen++
	}
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(lines), Character: uint32(lastLineLen)},
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
