package lsp

import protocol "github.com/gluax-lang/lsp"

func (h *Handler) DidOpen(p *protocol.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	text := p.TextDocument.Text
	h.fileCache[uri] = text
	h.handleDiagnostics(uri, text)
	return nil
}

func (h *Handler) DidChange(p *protocol.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(p.ContentChanges) == 0 {
		return nil
	}
	uri := p.TextDocument.URI
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	h.fileCache[uri] = text
	h.handleDiagnostics(uri, text)
	return nil
}

func (h *Handler) DidClose(p *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.fileCache, p.TextDocument.URI)
	return nil
}

func (h *Handler) DidSave(p *protocol.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	if p.Text == nil {
		return nil
	}
	text := *p.Text
	h.fileCache[uri] = text
	h.handleDiagnostics(uri, text)
	return nil
}
