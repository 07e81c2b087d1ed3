// Package lsp implements a Language Server Protocol server for TPTP
// problem files: diagnostics from parse errors, document symbols from the
// functor/predicate/type symbol set, and whole-document formatting via the
// canonical pretty-printer.
package lsp

import (
	"context"
	"encoding/json"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	"github.com/leoprover/go-tptp/parser"
	"github.com/leoprover/go-tptp/reporter"
)

// Server implements the LSP server.
type Server struct {
	docs   *documentStore
	conn   jsonrpc2.Conn
	client protocol.Client
	logger *zap.Logger
	cancel context.CancelFunc

	capabilities protocol.ServerCapabilities
}

// NewServer constructs a Server with logger as its diagnostic sink.
func NewServer(logger *zap.Logger) *Server {
	return &Server{
		docs:   newDocumentStore(),
		logger: logger,
		capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save:      &protocol.SaveOptions{IncludeText: false},
			},
			DocumentSymbolProvider: true,
			DocumentFormattingProvider: &protocol.DocumentFormattingOptions{},
		},
	}
}

// Run starts the server over stdio and blocks until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, s.logger)

	conn.Go(ctx, s.handler())

	<-ctx.Done()
	return conn.Close()
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return reply(ctx, nil, nil)
		case protocol.MethodShutdown:
			return reply(ctx, nil, nil)
		case protocol.MethodExit:
			if s.cancel != nil {
				s.cancel()
			}
			return reply(ctx, nil, nil)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentDidSave:
			return s.handleDidSave(ctx, reply, req)
		case protocol.MethodTextDocumentDocumentSymbol:
			return s.handleDocumentSymbol(ctx, reply, req)
		case protocol.MethodTextDocumentFormatting:
			return s.handleFormatting(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	result := protocol.InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo:   &protocol.ServerInfo{Name: "tptpfmt", Version: "0.1.0"},
	}
	return reply(ctx, result, nil)
}

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	docURI := string(params.TextDocument.URI)
	s.docs.put(docURI, params.TextDocument.Text)
	s.publishDiagnostics(ctx, docURI)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}
	docURI := string(params.TextDocument.URI)
	s.docs.put(docURI, params.ContentChanges[len(params.ContentChanges)-1].Text)
	s.publishDiagnostics(ctx, docURI)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	s.docs.remove(string(params.TextDocument.URI))
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
	}
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return reply(ctx, nil, nil)
}

func (s *Server) publishDiagnostics(ctx context.Context, docURI string) {
	text, ok := s.docs.get(docURI)
	if !ok {
		return
	}
	var diags []protocol.Diagnostic
	if _, err := parser.ParseProblem(text); err != nil {
		if pe, ok := err.(*reporter.ParseError); ok {
			s.logger.Debug("parse error", zap.String("file", filenameOf(docURI)), zap.Error(pe))
			line := pe.Line - 1
			if line < 0 {
				line = 0
			}
			col := pe.Column - 1
			if col < 0 {
				col = 0
			}
			diags = append(diags, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
					End:   protocol.Position{Line: uint32(line), Character: uint32(col) + 1},
				},
				Severity: protocol.DiagnosticSeverityError,
				Source:   "tptpfmt",
				Message:  pe.Message,
			})
		}
	}
	if s.client == nil {
		return
	}
	_ = s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: diags,
	})
}

// filenameOf recovers a loggable path from a document URI.
func filenameOf(docURI string) string {
	return uri.URI(docURI).Filename()
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
