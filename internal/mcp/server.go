// Package mcp exposes the mapping engine over the Model Context Protocol so
// AI assistants can illustrate walkthroughs they generate. The server speaks
// stdio; debug output is routed away from the protocol stream.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stepvis/stepvis/internal/debug"
	"github.com/stepvis/stepvis/internal/engine"
	"github.com/stepvis/stepvis/internal/scoring"
	"github.com/stepvis/stepvis/internal/sim"
	"github.com/stepvis/stepvis/internal/types"
	"github.com/stepvis/stepvis/internal/version"
)

// Server wires the engine and a loaded candidate pool to MCP tools.
type Server struct {
	engine *engine.Engine
	pool   *sim.Pool
	cfg    scoring.Config
	server *sdk.Server
}

// NewServer creates the MCP server over an engine and pool. cfg supplies the
// per-call defaults; tool parameters may override them call by call.
func NewServer(eng *engine.Engine, pool *sim.Pool, cfg scoring.Config) *Server {
	s := &Server{
		engine: eng,
		pool:   pool,
		cfg:    cfg,
	}

	s.server = sdk.NewServer(&sdk.Implementation{
		Name:    "stepvis-mcp-server",
		Version: version.Version,
	}, nil)
	s.registerTools()

	return s
}

// Run serves MCP over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	debug.LogMCP("serving over stdio (%d visual items)\n", len(s.pool.Items))
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// MapStepsParams are the map_steps tool arguments.
type MapStepsParams struct {
	Steps            []string `json:"steps"`
	Context          string   `json:"context,omitempty"`
	Threshold        *float64 `json:"threshold,omitempty"`
	MaxImageReuse    *int     `json:"max_image_reuse,omitempty"`
	DiversityPenalty *float64 `json:"diversity_penalty,omitempty"`
}

func (s *Server) registerTools() {
	s.server.AddTool(&sdk.Tool{
		Name:        "map_steps",
		Description: "Map ordered instruction steps onto the most relevant UI screenshots and hotspots from the loaded simulation pool. Returns one result per step, either a (visual item, hotspot, score) match or an unmapped marker.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"steps": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Ordered instruction steps, e.g. [\"Click Save\", \"Enter card number\"]",
				},
				"context": {
					Type:        "string",
					Description: "Free-text request the steps answer; used for domain matching",
				},
				"threshold": {
					Type:        "number",
					Description: "Minimum adjusted relevance score (default 0.15)",
				},
				"max_image_reuse": {
					Type:        "integer",
					Description: "Reuse cap per image within this call (default 3)",
				},
				"diversity_penalty": {
					Type:        "number",
					Description: "Score deduction per prior reuse of an image (default 0.15)",
				},
			},
			Required: []string{"steps"},
		},
	}, s.handleMapSteps)

	s.server.AddTool(&sdk.Tool{
		Name:        "info",
		Description: "Get server version and the size of the loaded candidate pool.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleInfo)
}

// mappedStep is the wire form of one mapping result.
type mappedStep struct {
	StepIndex int     `json:"step_index"`
	Step      string  `json:"step"`
	Mapped    bool    `json:"mapped"`
	VisualID  string  `json:"visual_id,omitempty"`
	Hotspot   string  `json:"hotspot,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

func (s *Server) handleMapSteps(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
	var params MapStepsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResponse(fmt.Errorf("invalid parameters: %w", err))
	}
	if len(params.Steps) == 0 {
		return errorResponse(fmt.Errorf("steps must not be empty"))
	}

	cfg := s.cfg
	if params.Threshold != nil {
		cfg.Threshold = *params.Threshold
	}
	if params.MaxImageReuse != nil {
		cfg.MaxImageReuse = *params.MaxImageReuse
	}
	if params.DiversityPenalty != nil {
		cfg.DiversityPenalty = *params.DiversityPenalty
	}

	steps := make([]types.Step, len(params.Steps))
	for i, text := range params.Steps {
		steps[i] = types.Step{Text: text}
	}

	run, err := s.engine.MapSteps(steps, s.pool.Items, cfg, params.Context)
	if err != nil {
		return errorResponse(err)
	}

	out := make([]mappedStep, len(run.Results))
	mapped := 0
	for i, r := range run.Results {
		out[i] = mappedStep{
			StepIndex: r.StepIndex,
			Step:      r.Step,
			Mapped:    r.Mapped,
			VisualID:  string(r.VisualID),
			Hotspot:   r.HotspotName,
			Score:     r.Score,
		}
		if r.Mapped {
			mapped++
		}
	}

	return jsonResponse(map[string]interface{}{
		"total_steps":  len(run.Results),
		"mapped_steps": mapped,
		"mapping_rate": types.MappingRate(run.Results),
		"mappings":     out,
	})
}

func (s *Server) handleInfo(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
	hotspots := 0
	for _, item := range s.pool.Items {
		hotspots += len(item.Hotspots)
	}
	return jsonResponse(map[string]interface{}{
		"server_name":    "stepvis-mcp-server",
		"server_version": version.FullInfo(),
		"go_version":     runtime.Version(),
		"platform":       runtime.GOOS + "/" + runtime.GOARCH,
		"visual_items":   len(s.pool.Items),
		"hotspots":       hotspots,
		"tools":          []string{"map_steps", "info"},
	})
}

// jsonResponse marshals data into a single text content block.
func jsonResponse(data interface{}) (*sdk.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %v", err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: string(content)},
		},
	}, nil
}

// errorResponse reports a tool-level failure through the protocol rather
// than as a transport error.
func errorResponse(err error) (*sdk.CallToolResult, error) {
	content, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return nil, merr
	}
	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{
			&sdk.TextContent{Text: string(content)},
		},
	}, nil
}
