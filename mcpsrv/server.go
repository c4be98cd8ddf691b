package mcpsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/gallery"
	"github.com/qyinm/folio/mcpsrv/dto"
	"github.com/qyinm/folio/types"
)

type projectListArgs struct {
	Filter string `json:"filter,omitempty" jsonschema:"Category to show, or All (default)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Optional maximum number of items"`
}

type projectGetArgs struct {
	ID string `json:"id" jsonschema:"Project id"`
}

type projectNavigateArgs struct {
	ID        string `json:"id" jsonschema:"Id of the project currently open"`
	Direction string `json:"direction" jsonschema:"Step direction: next or prev"`
	Filter    string `json:"filter,omitempty" jsonschema:"Active gallery filter, All by default"`
}

type projectSearchArgs struct {
	Query string `json:"query" jsonschema:"Search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"Optional maximum number of items"`
}

type projectListOutput struct {
	Filter string        `json:"filter"`
	Total  int           `json:"total"`
	Items  []dto.Project `json:"items"`
}

type projectGetOutput struct {
	Item dto.Project `json:"item"`
}

type projectNavigateOutput struct {
	Item     dto.Project `json:"item"`
	Moved    bool        `json:"moved"`
	Position int         `json:"position"`
	Total    int         `json:"total"`
}

type categoryListOutput struct {
	Total int            `json:"total"`
	Items []dto.Category `json:"items"`
}

type projectSearchOutput struct {
	Query string        `json:"query"`
	Total int           `json:"total"`
	Items []dto.Project `json:"items"`
}

type cacheClearOutput struct {
	Status string `json:"status"`
}

type ServerOptions struct {
	EnableSearch bool
	EnableAdmin  bool
	APIKey       string
}

type cacheClearSource interface {
	ClearCache()
}

// NewServer exposes the catalog behind source as MCP tools. The catalog is
// loaded per call, so a caching source decides how fresh answers are.
func NewServer(source types.ProjectSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "folio", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_list",
		Description: "List portfolio projects, optionally filtered by category.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectListArgs) (*mcp.CallToolResult, projectListOutput, error) {
		return projectListHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_get",
		Description: "Get one project with its details by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectGetArgs) (*mcp.CallToolResult, projectGetOutput, error) {
		return projectGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_navigate",
		Description: "Step from an open project to the previous or next one, as the gallery modal does.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args projectNavigateArgs) (*mcp.CallToolResult, projectNavigateOutput, error) {
		return projectNavigateHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "category_list",
		Description: "List project categories with the number of projects in each.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, categoryListOutput, error) {
		return categoryListHandler(ctx, req, source)
	})

	if opts.EnableSearch {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "project_search",
			Description: "Fuzzy search projects by title, description and tags.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, args projectSearchArgs) (*mcp.CallToolResult, projectSearchOutput, error) {
			return projectSearchHandler(ctx, req, args, source)
		})
	}

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "cache_clear",
			Description: "Clear the remote catalog cache (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, cacheClearOutput, error) {
			return cacheClearHandler(ctx, req, source)
		})
	}

	return server
}

func projectListHandler(_ context.Context, _ *mcp.CallToolRequest, args projectListArgs, source types.ProjectSource) (*mcp.CallToolResult, projectListOutput, error) {
	c, err := catalog.Load(source)
	if err != nil {
		return errorToolResult("load catalog failed"), projectListOutput{}, nil
	}

	filter := parseFilter(args.Filter)
	projects := applyLimit(c.Filter(filter), args.Limit)

	return nil, projectListOutput{
		Filter: filter,
		Total:  len(projects),
		Items:  dto.FromProjects(projects),
	}, nil
}

func projectGetHandler(_ context.Context, _ *mcp.CallToolRequest, args projectGetArgs, source types.ProjectSource) (*mcp.CallToolResult, projectGetOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), projectGetOutput{}, nil
	}

	c, err := catalog.Load(source)
	if err != nil {
		return errorToolResult("load catalog failed"), projectGetOutput{}, nil
	}

	p, ok := c.Lookup(id)
	if !ok {
		return errorToolResult(fmt.Sprintf("project %q not found", id)), projectGetOutput{}, nil
	}

	return nil, projectGetOutput{Item: dto.FromProject(p)}, nil
}

func projectNavigateHandler(_ context.Context, _ *mcp.CallToolRequest, args projectNavigateArgs, source types.ProjectSource) (*mcp.CallToolResult, projectNavigateOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), projectNavigateOutput{}, nil
	}
	dir, err := parseDirection(args.Direction)
	if err != nil {
		return errorToolResult(err.Error()), projectNavigateOutput{}, nil
	}

	c, err := catalog.Load(source)
	if err != nil {
		return errorToolResult("load catalog failed"), projectNavigateOutput{}, nil
	}

	p, ok := c.Lookup(id)
	if !ok {
		return errorToolResult(fmt.Sprintf("project %q not found", id)), projectNavigateOutput{}, nil
	}

	state := gallery.New(c)
	state.SetFilter(parseFilter(args.Filter))
	state.Select(p)
	moved := state.Navigate(dir)

	current, _ := state.Selected()
	position, total, _ := state.Position()

	return nil, projectNavigateOutput{
		Item:     dto.FromProject(current),
		Moved:    moved,
		Position: position,
		Total:    total,
	}, nil
}

func categoryListHandler(_ context.Context, _ *mcp.CallToolRequest, source types.ProjectSource) (*mcp.CallToolResult, categoryListOutput, error) {
	c, err := catalog.Load(source)
	if err != nil {
		return errorToolResult("load catalog failed"), categoryListOutput{}, nil
	}

	return nil, categoryListOutput{
		Total: c.Len(),
		Items: dto.FromCounts(c.Counts()),
	}, nil
}

func projectSearchHandler(_ context.Context, _ *mcp.CallToolRequest, args projectSearchArgs, source types.ProjectSource) (*mcp.CallToolResult, projectSearchOutput, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return errorToolResult("query is required"), projectSearchOutput{}, nil
	}

	c, err := catalog.Load(source)
	if err != nil {
		return errorToolResult("load catalog failed"), projectSearchOutput{}, nil
	}

	projects := applyLimit(c.Search(query), args.Limit)

	return nil, projectSearchOutput{
		Query: query,
		Total: len(projects),
		Items: dto.FromProjects(projects),
	}, nil
}

func cacheClearHandler(_ context.Context, _ *mcp.CallToolRequest, source types.ProjectSource) (*mcp.CallToolResult, cacheClearOutput, error) {
	clearable, ok := source.(cacheClearSource)
	if !ok {
		return errorToolResult("cache clear is not supported by this source"), cacheClearOutput{}, nil
	}
	clearable.ClearCache()
	return nil, cacheClearOutput{Status: "ok"}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func applyLimit(items []types.Project, limit int) []types.Project {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

// parseFilter accepts category names in any case. Unknown values pass through
// and match nothing.
func parseFilter(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, types.FilterAll) {
		return types.FilterAll
	}
	if c, ok := types.ParseCategory(v); ok {
		return string(c)
	}
	return v
}

func parseDirection(raw string) (gallery.Direction, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "next":
		return gallery.Next, nil
	case "prev", "previous":
		return gallery.Prev, nil
	default:
		return gallery.Next, fmt.Errorf("invalid direction %q; expected next|prev", raw)
	}
}
