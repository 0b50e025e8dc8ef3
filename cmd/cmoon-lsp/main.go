// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"cmoon/internal/config"
	"cmoon/internal/lsp"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Settings come from $CMOON_CONFIG or ./.cmoon.toml; stdout belongs to the protocol
	cfg, err := config.Resolve("")
	if err != nil {
		log.Println("Error loading C-Moon config:", err)
		os.Exit(1)
	}

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(max(1, cfg.Log.Verbosity), logFile)

	cmoonHandler := lsp.NewCMoonHandler(cfg.LSP.Name, version)

	handler = protocol.Handler{
		Initialize:                     cmoonHandler.Initialize,
		Initialized:                    cmoonHandler.Initialized,
		Shutdown:                       cmoonHandler.Shutdown,
		SetTrace:                       cmoonHandler.SetTrace,
		TextDocumentDidOpen:            cmoonHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           cmoonHandler.TextDocumentDidClose,
		TextDocumentDidChange:          cmoonHandler.TextDocumentDidChange,
		TextDocumentCompletion:         cmoonHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: cmoonHandler.TextDocumentSemanticTokensFull,
	}

	// debug enables glsp's own protocol tracing
	s := server.NewServer(&handler, cfg.LSP.Name, cfg.LSP.Debug)

	log.Println("Starting C-Moon LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting C-Moon LSP server:", err)
		os.Exit(1)
	}
}
