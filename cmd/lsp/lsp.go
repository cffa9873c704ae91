// Package lsp serves pipeline diagnostics and token hovers over the
// language server protocol.
package lsp

import (
	"context"
	"log"
	"os"
	"sync"

	protocol "github.com/gluax-lang/lsp"
	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/compiler"
)

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	fileCache map[string]string
	mu        sync.Mutex
	workspace string
}

func NewHandler() *Handler {
	h := &Handler{
		fileCache: make(map[string]string),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		root, err := common.URIToFilePath((*p.WorkspaceFolders)[0].URI)
		if err != nil {
			log.Printf("invalid workspace folder: %v", err)
		} else {
			h.workspace = root
		}
	}
	log.Printf("root: %s", h.workspace)
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// Diagnostics compiles code and reports its first error, if any. An empty
// result clears earlier diagnostics in the client.
func Diagnostics(path, code string) []protocol.Diagnostic {
	_, err := compiler.Compile(path, code, codegen.DefaultOptions())
	if err == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{*compiler.Diagnostic(err)}
}

func (h *Handler) handleDiagnostics(uri, code string) {
	path, err := common.URIToFilePath(uri)
	if err != nil {
		log.Printf("diagnostics skipped: %v", err)
		return
	}
	h.PublishDiagnostics(uri, Diagnostics(path, code))
}
