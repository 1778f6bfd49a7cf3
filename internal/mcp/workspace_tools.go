package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	// workspace_root tool
	s.mcpServer.AddTool(mcp.NewTool("workspace_root",
		mcp.WithDescription("Find the workspace root for a directory. Returns found=false when no ancestor declares a workspace."),
		mcp.WithString("dir",
			mcp.Description("Directory believed to be inside a workspace member"),
			mcp.Required(),
		),
	), s.handleWorkspaceRoot)

	// workspace_members tool
	s.mcpServer.AddTool(mcp.NewTool("workspace_members",
		mcp.WithDescription("List the member directories of the workspace surrounding a directory."),
		mcp.WithString("dir",
			mcp.Description("Directory believed to be inside a workspace member"),
			mcp.Required(),
		),
	), s.handleWorkspaceMembers)

	// workspace_extra_paths tool
	s.mcpServer.AddTool(mcp.NewTool("workspace_extra_paths",
		mcp.WithDescription("Compute the relative paths from a member directory to every sibling workspace member, for injection into a language server's extra search paths."),
		mcp.WithString("dir",
			mcp.Description("Member root directory the language-analysis session is rooted at"),
			mcp.Required(),
		),
	), s.handleWorkspaceExtraPaths)
}

// dirArgument extracts and normalizes the required dir argument.
func dirArgument(request mcp.CallToolRequest) (string, error) {
	args := request.GetArguments()
	dir, ok := args["dir"].(string)
	if !ok || dir == "" {
		return "", fmt.Errorf("invalid or missing dir argument")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid dir argument: %w", err)
	}
	return abs, nil
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(data),
			},
		},
	}, nil
}

func (s *Server) handleWorkspaceRoot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := dirArgument(request)
	if err != nil {
		return nil, err
	}

	root, err := s.resolver.FindRoot(dir)
	if err != nil {
		// Not-found is a normal result, not a tool failure.
		return textResult(struct {
			Found bool `json:"found"`
		}{Found: false})
	}

	return textResult(struct {
		Found bool   `json:"found"`
		Path  string `json:"path"`
	}{Found: true, Path: root.Path})
}

func (s *Server) handleWorkspaceMembers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := dirArgument(request)
	if err != nil {
		return nil, err
	}

	result := struct {
		Root    string   `json:"root,omitempty"`
		Members []string `json:"members"`
	}{Members: []string{}}

	root, err := s.resolver.FindRoot(dir)
	if err == nil {
		result.Root = root.Path
		result.Members = append(result.Members, s.resolver.MemberDirs(root)...)
	}
	return textResult(result)
}

func (s *Server) handleWorkspaceExtraPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := dirArgument(request)
	if err != nil {
		return nil, err
	}

	paths := s.resolver.ExtraPaths(dir)
	if paths == nil {
		paths = []string{}
	}
	return textResult(struct {
		ExtraPaths []string `json:"extraPaths"`
	}{ExtraPaths: paths})
}
