package mcp

import (
	"context"
	"fmt"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server represents the MCP server for effort estimation operations
type Server struct {
	server *mcp.Server
	store  *ChrootedStore
	config *model.Config
	engine *estimator.Engine
	logger *zap.Logger
}

// ServerOptions contains options for the MCP server
type ServerOptions struct {
	RootDir string
	Config  *model.Config
	Logger  *zap.Logger
	Version string
}

// NewServer creates a new MCP server for effort estimation operations
func NewServer(opts *ServerOptions) (*Server, error) {
	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir = "."
	}

	store, err := NewChrootedStore(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create chrooted store: %w", err)
	}

	config := opts.Config
	if config == nil {
		config = model.DefaultConfig()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "effortcalc",
		Version: version,
	}, nil)

	s := &Server{
		server: server,
		store:  store,
		config: config,
		engine: estimator.NewEngine(estimator.WithPolicy(config.GetPolicy())),
		logger: logger.Named("mcp"),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server on stdio transport
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close closes the server and releases resources
func (s *Server) Close() error {
	return s.store.Close()
}

func (s *Server) registerTools() {
	// Calculator tools
	s.registerComputeEstimateTool()
	s.registerListFactorsTool()

	// Estimate file tools
	s.registerListEstimatesTool()
	s.registerCreateEstimateTool()
	s.registerGetEstimateTool()
	s.registerUpdateEstimateTool()
	s.registerDeleteEstimateTool()

	// Config tools
	s.registerGetConfigTool()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// inputArgs are the factor selections shared by the compute and estimate tools
type inputArgs struct {
	Role             string   `json:"role,omitempty" jsonschema:"estimator persona: BA/PMO or Developer, defaults to the configured persona"`
	TaskType         string   `json:"taskType,omitempty" jsonschema:"Feature, Bug, Refactor or Spike"`
	Complexity       string   `json:"complexity,omitempty" jsonschema:"Simple, Medium, High or Very High"`
	CodeImpact       string   `json:"codeImpact,omitempty" jsonschema:"Modify, New, BugFix, Refactor or Spike"`
	Dependencies     string   `json:"dependencies,omitempty" jsonschema:"None, Few, Many or External"`
	TechNovelty      string   `json:"techNovelty,omitempty" jsonschema:"Familiar, Mixed or New"`
	MeetingsLoad     string   `json:"meetingsLoad,omitempty" jsonschema:"Low, Medium or High"`
	DeveloperLevel   string   `json:"developerLevel,omitempty" jsonschema:"Senior, Mid or Junior, only applied when role is Developer"`
	LOCBucket        string   `json:"locBucket,omitempty" jsonschema:"<100, 100-300, 300-700 or >700"`
	Availability     string   `json:"availability,omitempty" jsonschema:"100%, 50% or 25%"`
	Risk             string   `json:"risk,omitempty" jsonschema:"Low, Medium or High"`
	BaseEffortHours  *float64 `json:"baseEffortHours,omitempty" jsonschema:"base effort in hours, must be > 0"`
	FocusHoursPerDay *float64 `json:"focusHoursPerDay,omitempty" jsonschema:"focus hours per day, must be > 0"`
	StartDate        string   `json:"startDate,omitempty" jsonschema:"optional start date as YYYY-MM-DD"`
}

func (a inputArgs) overrides() model.InputOverrides {
	return model.InputOverrides{
		Role:             a.Role,
		TaskType:         a.TaskType,
		Complexity:       a.Complexity,
		CodeImpact:       a.CodeImpact,
		Dependencies:     a.Dependencies,
		TechNovelty:      a.TechNovelty,
		MeetingsLoad:     a.MeetingsLoad,
		DeveloperLevel:   a.DeveloperLevel,
		LOCBucket:        a.LOCBucket,
		Availability:     a.Availability,
		Risk:             a.Risk,
		BaseEffortHours:  a.BaseEffortHours,
		FocusHoursPerDay: a.FocusHoursPerDay,
		StartDate:        a.StartDate,
	}
}

func (s *Server) buildInput(args inputArgs) (model.EstimationInput, error) {
	in := s.config.NewInput("")
	if err := args.overrides().Apply(&in); err != nil {
		return model.EstimationInput{}, err
	}
	return in, nil
}

func (s *Server) render(estimate *model.Estimate, formatName string) (string, error) {
	formatter, err := format.New(formatName, s.engine)
	if err != nil {
		return "", err
	}
	return formatter.Format(estimate)
}

// compute_estimate tool
type computeEstimateArgs struct {
	Selection inputArgs `json:"selection,omitempty" jsonschema:"factor selections, missing ones use the configured defaults"`
	Format string `json:"format,omitempty" jsonschema:"output format: text, markdown, json or yaml, defaults to text"`
}

func (s *Server) registerComputeEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compute_estimate",
		Description: "Compute an effort estimate (hours, working days and projected end date) from factor selections. Missing selections use the configured defaults.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args computeEstimateArgs) (*mcp.CallToolResult, any, error) {
		in, err := s.buildInput(args.Selection)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid selection: %w", err)
		}

		s.logger.Debug("computing estimate", zap.String("role", string(in.Role)))

		result, err := s.render(&model.Estimate{Input: in}, args.Format)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute estimate: %w", err)
		}

		return textResult(result), nil, nil
	})
}

// list_factors tool
type listFactorsArgs struct{}

func (s *Server) registerListFactorsTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_factors",
		Description: "List every factor category with its options and multipliers, and the risk buffers",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listFactorsArgs) (*mcp.CallToolResult, any, error) {
		return textResult(format.FactorCatalogue()), nil, nil
	})
}

// list_estimates tool
type listEstimatesArgs struct {
	Dir string `json:"dir,omitempty" jsonschema:"the directory to list estimates from, defaults to current directory"`
}

func (s *Server) registerListEstimatesTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_estimates",
		Description: "List all estimate files in a directory",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listEstimatesArgs) (*mcp.CallToolResult, any, error) {
		dir := args.Dir
		if dir == "" {
			dir = "."
		}

		files, err := s.store.ListEstimates(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list estimates: %w", err)
		}

		if len(files) == 0 {
			return textResult("No estimate files found."), nil, nil
		}

		result := "Estimate files:\n"
		for _, f := range files {
			result += fmt.Sprintf("- %s\n", f)
		}

		return textResult(result), nil, nil
	})
}

// create_estimate tool
type createEstimateArgs struct {
	Selection   inputArgs `json:"selection,omitempty" jsonschema:"factor selections, missing ones use the configured defaults"`
	Path        string `json:"path" jsonschema:"the file path for the estimate, should end with .estimate.yml"`
	Label       string `json:"label" jsonschema:"the label/name for the estimate"`
	Description string `json:"description,omitempty" jsonschema:"optional description for the estimate"`
}

func (s *Server) registerCreateEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_estimate",
		Description: "Create a new estimate file from factor selections. Missing selections use the configured defaults.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args createEstimateArgs) (*mcp.CallToolResult, any, error) {
		in, err := s.buildInput(args.Selection)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid selection: %w", err)
		}

		if _, err := s.engine.Compute(in); err != nil {
			return nil, nil, fmt.Errorf("failed to create estimate: %w", err)
		}

		estimate := model.NewEstimate(args.Label, in)
		estimate.Description = args.Description

		if err := s.store.SaveEstimate(args.Path, estimate); err != nil {
			return nil, nil, fmt.Errorf("failed to create estimate: %w", err)
		}

		return textResult(fmt.Sprintf("Created estimate '%s' at %s with ID %s", args.Label, args.Path, estimate.ID)), nil, nil
	})
}

// get_estimate tool
type getEstimateArgs struct {
	Path   string `json:"path" jsonschema:"the file path to the estimate"`
	Format string `json:"format,omitempty" jsonschema:"output format: text, markdown, json or yaml, defaults to text"`
}

func (s *Server) registerGetEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_estimate",
		Description: "Get an estimate file with its computed effort, working days and end date",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getEstimateArgs) (*mcp.CallToolResult, any, error) {
		estimate, err := s.store.LoadEstimate(args.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load estimate: %w", err)
		}

		result, err := s.render(estimate, args.Format)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute estimate: %w", err)
		}

		return textResult(result), nil, nil
	})
}

// update_estimate tool
type updateEstimateArgs struct {
	Selection inputArgs `json:"selection,omitempty" jsonschema:"factor selections to change"`
	Path  string `json:"path" jsonschema:"the file path to the estimate"`
	Label string `json:"label,omitempty" jsonschema:"optional new label"`
}

func (s *Server) registerUpdateEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_estimate",
		Description: "Update the selections of an existing estimate file. Only the provided selections change.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args updateEstimateArgs) (*mcp.CallToolResult, any, error) {
		estimate, err := s.store.LoadEstimate(args.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load estimate: %w", err)
		}

		in := estimate.Input
		if err := args.Selection.overrides().Apply(&in); err != nil {
			return nil, nil, fmt.Errorf("invalid selection: %w", err)
		}

		if _, err := s.engine.Compute(in); err != nil {
			return nil, nil, fmt.Errorf("failed to update estimate: %w", err)
		}

		estimate.SetInput(in)
		if args.Label != "" {
			estimate.Label = args.Label
		}

		if err := s.store.SaveEstimate(args.Path, estimate); err != nil {
			return nil, nil, fmt.Errorf("failed to save estimate: %w", err)
		}

		result, err := s.render(estimate, "text")
		if err != nil {
			return nil, nil, err
		}

		return textResult(fmt.Sprintf("Estimate %s updated\n\n%s", estimate.ID, result)), nil, nil
	})
}

// delete_estimate tool
type deleteEstimateArgs struct {
	Path string `json:"path" jsonschema:"the file path to the estimate to delete"`
}

func (s *Server) registerDeleteEstimateTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_estimate",
		Description: "Delete an estimate file",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args deleteEstimateArgs) (*mcp.CallToolResult, any, error) {
		if err := s.store.DeleteEstimate(args.Path); err != nil {
			return nil, nil, fmt.Errorf("failed to delete estimate: %w", err)
		}

		return textResult(fmt.Sprintf("Deleted estimate at %s", args.Path)), nil, nil
	})
}

// get_config tool
type getConfigArgs struct{}

func (s *Server) registerGetConfigTool() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_config",
		Description: "Get the current effortcalc configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getConfigArgs) (*mcp.CallToolResult, any, error) {
		result := "Configuration:\n"
		result += fmt.Sprintf("  Persona: %s\n", s.config.GetPersona())
		result += fmt.Sprintf("  Non-positive hours policy: %s\n\n", s.config.GetPolicy())

		result += "Defaults:\n"
		result += fmt.Sprintf("  Base effort: %.2f hrs\n", s.config.Defaults.BaseEffortHours)
		result += fmt.Sprintf("  Focus hours/day: %.2f\n", s.config.Defaults.FocusHoursPerDay)
		result += fmt.Sprintf("  Developer level: %s\n", s.config.Defaults.DeveloperLevel)
		result += fmt.Sprintf("  Availability: %s\n", s.config.Defaults.Availability)
		result += fmt.Sprintf("  Risk: %s\n", s.config.Defaults.Risk)

		return textResult(result), nil, nil
	})
}
