package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"cmoon/internal/ast"
	"cmoon/internal/parser"
	"cmoon/token"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var logger = commonlog.GetLogger("cmoon.lsp")

// Define the set of supported semantic token types (advertised in the initialize legend)
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"number",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// document is the cached state of one open file
type document struct {
	text   string
	tokens []token.Token
	root   *ast.Node
}

// CMoonHandler implements the LSP server handlers for C-Moon
type CMoonHandler struct {
	name    string
	version string

	mu   sync.RWMutex
	docs map[string]*document
}

// NewCMoonHandler creates and returns a new CMoonHandler instance
func NewCMoonHandler(name, version string) *CMoonHandler {
	return &CMoonHandler{
		name:    name,
		version: version,
		docs:    make(map[string]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *CMoonHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	logger.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    h.name,
			Version: &h.version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *CMoonHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	logger.Info("C-Moon LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *CMoonHandler) Shutdown(ctx *glsp.Context) error {
	logger.Info("C-Moon LSP shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *CMoonHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *CMoonHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	logger.Infof("opened file: %s", params.TextDocument.URI)

	diagnostics := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *CMoonHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	logger.Infof("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.docs, params.TextDocument.URI)

	return nil
}

// TextDocumentDidChange handles file change notifications. The server asks
// for full sync, so the last whole-document change wins.
func (h *CMoonHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	logger.Debugf("changed file: %s", params.TextDocument.URI)

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		var err error
		if text, err = readDocument(params.TextDocument.URI); err != nil {
			return fmt.Errorf("failed to refresh %s: %w", params.TextDocument.URI, err)
		}
	}

	diagnostics := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the reserved words
func (h *CMoonHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for _, kw := range token.Keywords() {
		detail := "keyword"
		if k := token.Lookup(kw); k == token.IF || k == token.ELSE || k == token.WHILE {
			detail = "reserved keyword"
		}
		items = append(items, protocol.CompletionItem{
			Label:  kw,
			Kind:   &kind,
			Detail: &detail,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *CMoonHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	doc, err := h.getOrLoad(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.text, doc.tokens)),
	}, nil
}

// Document returns the cached text and tree of an open document.
func (h *CMoonHandler) Document(uri string) (text string, root *ast.Node, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return "", nil, false
	}
	return doc.text, doc.root, true
}

func (h *CMoonHandler) getOrLoad(ctx *glsp.Context, uri string) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	text, err := readDocument(uri)
	if err != nil {
		return nil, err
	}
	sendDiagnosticNotification(ctx, uri, h.update(uri, text))

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.docs[uri], nil
}

// update re-runs the pipeline over text and caches the result. It always
// returns a non-nil slice so clients clear stale diagnostics.
func (h *CMoonHandler) update(uri, text string) []protocol.Diagnostic {
	tokens, root, err := parser.ParseSource(text)

	h.mu.Lock()
	h.docs[uri] = &document{text: text, tokens: tokens, root: root}
	h.mu.Unlock()

	if err != nil {
		logger.Debugf("%s: %s", uri, err)
		return ConvertError(text, err)
	}
	return []protocol.Diagnostic{}
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch c := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		case *protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		}
	}
	return "", false
}

func readDocument(uri string) (string, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return "", fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	if logger.AllowLevel(commonlog.Debug) {
		if diagnosticsJSON, err := json.Marshal(diagnostics); err == nil {
			logger.Debugf("sending diagnostics: %s", diagnosticsJSON)
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
