package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sant0-9/mien/internal/character"
	"github.com/sant0-9/mien/internal/character/endora"
)

// registerTools registers every tool with the server. Handlers convert
// all core errors to "Error: <message>" text results; the boundary never
// lets a fault escape to the caller.
func registerTools(s *server.MCPServer, version string) {
	s.AddTool(mcp.NewTool("enhance_prompt",
		mcp.WithDescription("Enhance an image generation prompt with a character's sensory logic"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to transform"),
		),
		mcp.WithNumber("intensity",
			mcp.DefaultNumber(5),
			mcp.Description("Transformation intensity, integer 0-10"),
		),
		mcp.WithBoolean("include_details",
			mcp.DefaultBool(false),
			mcp.Description("Return the full transformation record as JSON"),
		),
		mcp.WithString("character",
			mcp.DefaultString("endora"),
			mcp.Description("Character to apply (see list_characters)"),
		),
	), handleEnhance)

	s.AddTool(mcp.NewTool("get_intensity_info",
		mcp.WithDescription("Describe what a specific intensity level means"),
		mcp.WithNumber("intensity",
			mcp.Required(),
			mcp.Description("Intensity level 0-10"),
		),
	), handleIntensityInfo)

	s.AddTool(mcp.NewTool("get_examples",
		mcp.WithDescription("Get example transformations at different intensities"),
		mcp.WithNumber("intensity",
			mcp.Description("Specific intensity to get the example for; omit for all"),
		),
	), handleExamples)

	s.AddTool(mcp.NewTool("list_characters",
		mcp.WithDescription("List all available character operators"),
	), handleListCharacters)

	s.AddTool(mcp.NewTool("get_server_info",
		mcp.WithDescription("Get information about this server"),
	), infoHandler(version))
}

func handleEnhance(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	promptText, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err), nil
	}

	intensity, err := intArg(req, "intensity", 5)
	if err != nil {
		return errorResult(err), nil
	}
	includeDetails := req.GetBool("include_details", false)

	id := req.GetString("character", "endora")
	if id != "endora" {
		info := character.GetInfo(id)
		if info == nil {
			return errorResult(fmt.Errorf("unknown character %q", id)), nil
		}
		return errorResult(fmt.Errorf("character %q is not yet available (status: %s)", id, info.Status)), nil
	}

	resp, err := endora.Enhance(promptText, intensity, includeDetails)
	if err != nil {
		return errorResult(err), nil
	}

	if !includeDetails {
		return mcp.NewToolResultText(resp.EnhancedPrompt), nil
	}
	return jsonResult(resp)
}

func handleIntensityInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	intensity, err := intArg(req, "intensity", 0)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(endora.IntensityDescription(intensity)), nil
}

func handleExamples(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if _, present := args["intensity"]; !present {
		return jsonResult(endora.Examples())
	}

	intensity, err := intArg(req, "intensity", 0)
	if err != nil {
		return errorResult(err), nil
	}

	// An unlisted intensity yields an empty result, not an error.
	out := map[int]endora.Example{}
	if ex, ok := endora.ExampleFor(intensity); ok {
		out[intensity] = ex
	}
	return jsonResult(out)
}

func handleListCharacters(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string][]character.Info{"characters": character.Characters})
}

func infoHandler(version string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]string{
			"server":      Name,
			"version":     version,
			"description": Description,
		})
	}
}

// intArg reads a numeric argument and rejects non-integer values, which
// JSON cannot distinguish from integers by type alone.
func intArg(req mcp.CallToolRequest, name string, fallback float64) (int, error) {
	raw := req.GetFloat(name, fallback)
	if raw != math.Trunc(raw) {
		return 0, fmt.Errorf("%s must be an integer, got %v", name, raw)
	}
	return int(raw), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err))
}
