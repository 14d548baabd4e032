// Command mcp-clipboard-server exposes the host OS clipboard over the MCP
// stdio transport. Logs go to stderr; stdout carries only JSON-RPC.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipmcp/mcp-clipboard-go/clipboard"
	"github.com/clipmcp/mcp-clipboard-go/cliptools"
	"github.com/clipmcp/mcp-clipboard-go/internal/logctx"
	"github.com/clipmcp/mcp-clipboard-go/mcp"
	"github.com/clipmcp/mcp-clipboard-go/mcpservice"
	"github.com/clipmcp/mcp-clipboard-go/stdio"
	"github.com/joeshaw/envdecode"
)

const (
	serverName    = "mcp-clipboard-server"
	serverVersion = "1.0.0"
)

type config struct {
	LogLevel  string `env:"MCP_LOG_LEVEL,default=info"`
	LogFormat string `env:"MCP_LOG_FORMAT,default=text"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp-clipboard-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tools := cliptools.NewToolsContainer(clipboard.NewSystem(), cliptools.WithLogger(log))

	srv := mcpservice.NewServer(
		mcpservice.WithServerInfo(mcp.ImplementationInfo{Name: serverName, Version: serverVersion}),
		mcpservice.WithToolsCapability(tools),
	)

	h := stdio.NewHandler(srv, stdio.WithLogger(log))
	if err := h.Serve(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func newLogger(cfg config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid MCP_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var base slog.Handler
	switch cfg.LogFormat {
	case "text":
		base = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		base = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("invalid MCP_LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return slog.New(logctx.Handler{Handler: base}), nil
}
