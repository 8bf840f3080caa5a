// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"ltlsimplify/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "ltl-simplify"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	ltlHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     ltlHandler.Initialize,
		Initialized:                    ltlHandler.Initialized,
		Shutdown:                       ltlHandler.Shutdown,
		TextDocumentDidOpen:            ltlHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           ltlHandler.TextDocumentDidClose,
		TextDocumentDidChange:          ltlHandler.TextDocumentDidChange,
		TextDocumentCompletion:         ltlHandler.TextDocumentCompletion,
		TextDocumentHover:              ltlHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: ltlHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting LTL simplifier LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting LTL simplifier LSP server:", err)
		os.Exit(1)
	}
}
