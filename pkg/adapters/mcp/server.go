package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/vaultmap"
	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/aretw0/vaultmap/pkg/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// PaletteURI names the read-only resource holding both fixed tables.
const PaletteURI = "vaultmap://palette"

// ConvertResponse mirrors the HTTP /convert body.
type ConvertResponse struct {
	Map         string                            `json:"map" jsonschema_description:"The MAP ... ENDMAP block"`
	Colors      []domain.ColorName                `json:"colors" jsonschema_description:"Distinct colours in order of first appearance"`
	Assignments map[domain.ColorName]domain.Glyph `json:"assignments" jsonschema_description:"Glyph chosen for each colour"`
	Cached      bool                              `json:"cached"`
}

// ColorsResponse lists the colours of an export.
type ColorsResponse struct {
	Colors []vaultmap.ColorSummary `json:"colors"`
}

// Server exposes the conversion service as an MCP server.
type Server struct {
	svc       *service.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(svc *service.Service) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("vaultmap-mcp", strings.TrimSpace(vaultmap.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx
// is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	convertTool := mcp.NewTool("convert_export",
		mcp.WithDescription("Convert a Piskel C array export into a Dungeon Crawl MAP block. Colours with a suggested glyph use it unless overridden; every other colour needs an entry in glyphs."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Contents of the .c export")),
		mcp.WithString("glyphs", mcp.Description("JSON object mapping colour names to glyphs, e.g. {\"#332211\": \".\"}")),
		mcp.WithNumber("frame", mcp.Description("Zero-based frame index (default 0)")),
		mcp.WithBoolean("lenient", mcp.Description("Accept exports without the {\\n{\\n marker")),
		mcp.WithOutputSchema[ConvertResponse](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))

	colorsTool := mcp.NewTool("list_colors",
		mcp.WithDescription("List the distinct colours of an export with cell counts and suggested glyphs."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Contents of the .c export")),
		mcp.WithNumber("frame", mcp.Description("Zero-based frame index (default 0)")),
		mcp.WithBoolean("lenient", mcp.Description("Accept exports without the {\\n{\\n marker")),
		mcp.WithOutputSchema[ColorsResponse](),
	)
	s.mcpServer.AddTool(colorsTool, mcp.NewStructuredToolHandler(s.handleColors))
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResponse, error) {
	req, err := decodeRequest(args)
	if err != nil {
		return ConvertResponse{}, err
	}

	resp, err := s.svc.Convert(ctx, "mcp", req)
	if err != nil {
		return ConvertResponse{}, fmt.Errorf("convert failed: %w", err)
	}

	return ConvertResponse{
		Map:         resp.Map,
		Colors:      resp.Colors,
		Assignments: resp.Assignments,
		Cached:      resp.Cached,
	}, nil
}

func (s *Server) handleColors(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ColorsResponse, error) {
	req, err := decodeRequest(args)
	if err != nil {
		return ColorsResponse{}, err
	}

	colors, err := s.svc.Colors(ctx, req)
	if err != nil {
		return ColorsResponse{}, fmt.Errorf("list colors failed: %w", err)
	}
	return ColorsResponse{Colors: colors}, nil
}

// decodeRequest maps tool arguments onto a service.Request. glyphs may arrive
// as a JSON string or as an object.
func decodeRequest(args map[string]interface{}) (service.Request, error) {
	var req service.Request

	if raw, ok := args["glyphs"].(string); ok {
		glyphs := map[string]string{}
		if strings.TrimSpace(raw) != "" {
			if err := json.Unmarshal([]byte(raw), &glyphs); err != nil {
				return req, fmt.Errorf("invalid glyphs: %w", err)
			}
		}
		copied := make(map[string]interface{}, len(args))
		for k, v := range args {
			copied[k] = v
		}
		copied["glyphs"] = glyphs
		args = copied
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &req,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return req, err
	}
	if err := decoder.Decode(args); err != nil {
		return req, fmt.Errorf("invalid arguments: %w", err)
	}
	return req, nil
}

type paletteResource struct {
	Colors      []palette.Entry                         `json:"colors"`
	Suggestions map[domain.ColorName]domain.Suggestion `json:"suggestions"`
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(PaletteURI, "Colour table and glyph suggestions",
		mcp.WithMIMEType("application/json"),
	), s.readPalette)
}

func (s *Server) readPalette(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(paletteResource{
		Colors:      palette.New(nil).Entries(),
		Suggestions: glyph.DefaultSuggestions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PaletteURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
