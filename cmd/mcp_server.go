package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/taskbadge/internal/badge"
	"github.com/mj1618/taskbadge/internal/config"
	"github.com/mj1618/taskbadge/internal/icons"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/mj1618/taskbadge/internal/version"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the badge engine. The tracker
// lives as long as the server, so repeated refresh calls stay cheap.
type mcpServer struct {
	cfg        config.Config
	provider   *platform.Provider
	runner     *badge.Runner
	tracker    *badge.Tracker
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the badge tools.
func newMCPServer(mcpCfg MCPConfig) (*mcpServer, error) {
	cfg := loadConfig()
	tracker := badge.NewTracker()
	runner, provider, err := newRunner(cfg, tracker, true)
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		cfg:      cfg,
		provider: provider,
		runner:   runner,
		tracker:  tracker,
	}

	s.mcp = mcpserver.NewMCPServer(
		"taskbadge",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List visible windows with title, process, and the badge icon a pass would resolve for each. Windows badged by this server show applied: true. Applies nothing."),
			mcp.WithString("process", mcp.Description("Filter by process name substring")),
			mcp.WithBoolean("eligible", mcp.Description("Only include windows that would receive a badge")),
		),
		s.handleList,
	)

	// refresh
	s.mcp.AddTool(
		mcp.NewTool("refresh",
			mcp.WithDescription("Run one badge pass: resolve an icon for each new or retitled window and apply it as a taskbar overlay. Windows badged by an earlier refresh are skipped."),
			mcp.WithBoolean("force", mcp.Description("Forget applied state first, re-badging every window")),
			mcp.WithBoolean("decisions", mcp.Description("Include the per-window decision list in the result")),
		),
		s.handleRefresh,
	)

	// clear
	s.mcp.AddTool(
		mcp.NewTool("clear",
			mcp.WithDescription("Remove the overlay badge from every eligible window"),
		),
		s.handleClear,
	)

	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report engine state: icons root, available icons, and how many windows currently hold a badge"),
		),
		s.handleStatus,
	)
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	process := stringParam(params, "process", "")
	eligible := boolParam(params, "eligible", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.provider.Enumerator.VisibleWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries := listEntries(windows, s.runner.Resolver, s.runner.Ignore, s.tracker, process, eligible)
	b, _ := yaml.Marshal(entries)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleRefresh(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	force := boolParam(params, "force", false)
	decisions := boolParam(params, "decisions", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if force {
		s.tracker.Clear()
	}

	windows, err := s.provider.Enumerator.VisibleWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep := s.runner.Run(windows)
	b, _ := yaml.Marshal(output.NewPassResult(rep, decisions))
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleClear(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.provider.Enumerator.VisibleWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep := s.runner.ClearAll(windows)
	// Forget applied state so the next refresh re-badges everything.
	s.tracker.Clear()
	b, _ := yaml.Marshal(output.NewPassResult(rep, false))
	return mcp.NewToolResultText(string(b)), nil
}

// mcpStatus is the status tool's response payload.
type mcpStatus struct {
	Version   string `yaml:"version"`
	IconsRoot string `yaml:"icons_root"`
	Icons     int    `yaml:"icons"`
	Tracked   int    `yaml:"tracked"`
}

func (s *mcpServer) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	st := mcpStatus{
		Version:   version.Version,
		IconsRoot: s.cfg.IconsRoot,
		Tracked:   s.tracker.Len(),
	}
	if entries, err := icons.Inventory(s.cfg.IconsRoot, s.cfg.WorkspaceSubdir); err == nil {
		st.Icons = len(entries)
	}

	b, _ := yaml.Marshal(st)
	return mcp.NewToolResultText(string(b)), nil
}

// Parameter extraction helpers for tool argument maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that clients may send for string fields
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
