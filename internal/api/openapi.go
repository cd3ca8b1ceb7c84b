package api

import (
	"github.com/sanchika-app/sanchika/internal/config"
	"github.com/sanchika-app/sanchika/pkg/openapi"
)

// buildSpec describes the public API surface for the reference UI. Schemas
// stay at summary depth; handlers remain the source of truth for payloads.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Input": {
			Type:     "object",
			Required: []string{"title", "body"},
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"title":        {Type: "string"},
				"body":         {Type: "string"},
				"category":     {Type: "string"},
				"source_image": {Type: "string"},
			},
		},
		"Output": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"content_id": {Type: "string", Format: "uuid"},
				"success":    {Type: "boolean"},
				"status":     {Type: "string", Enum: []any{"published", "draft", "rejected"}},
				"category":   {Type: "string"},
				"headline":   {Type: "string"},
				"body":       {Type: "string"},
				"source":     {Type: "string", Enum: []any{"template", "model"}},
				"errors":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"Summary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "integer"},
				"failed":  {Type: "integer"},
				"results": {Type: "array", Items: openapi.SchemaRef("Output")},
			},
		},
		"BatchRequest": {
			Type:     "object",
			Required: []string{"items"},
			Properties: map[string]*openapi.Schema{
				"items": {Type: "array", Items: openapi.SchemaRef("Input")},
				"quick": {Type: "boolean"},
			},
		},
		"ReviewCommand": {
			Type:     "object",
			Required: []string{"reviewed_by"},
			Properties: map[string]*openapi.Schema{
				"reviewed_by": {Type: "string"},
			},
		},
		"Content": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"headline":     {Type: "string"},
				"body":         {Type: "string"},
				"category":     {Type: "string"},
				"status":       {Type: "string"},
				"risk":         {Type: "string"},
				"score":        {Type: "integer"},
				"image_url":    {Type: "string"},
				"processed_at": {Type: "string", Format: "date-time"},
				"reviewed_by":  {Type: "string"},
			},
		},
		"Block": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"type":       {Type: "string"},
				"template":   {Type: "string"},
				"cluster_id": {Type: "string"},
				"active":     {Type: "boolean"},
			},
		},
		"ConfidenceResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"score":       {Type: "number"},
				"status":      {Type: "string", Enum: []any{"ready", "refinement", "ai_help", "rejected"}},
				"can_publish": {Type: "boolean"},
				"needs_ai":    {Type: "boolean"},
			},
		},
		"ValidationResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"score":          {Type: "integer"},
				"recommendation": {Type: "string", Enum: []any{"publish", "review", "reject"}},
				"reasons":        {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"ImageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"url":    {Type: "string"},
				"source": {Type: "string"},
				"width":  {Type: "integer"},
				"height": {Type: "integer"},
			},
		},
	})

	spec.Paths["/contents"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List processed contents",
			Tags:    []string{"contents"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("status", "string", "Filter by routing status", false),
				openapi.QueryParam("category", "string", "Filter by category", false),
				openapi.QueryParam("risk", "string", "Filter by risk level", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of contents", "Content"),
			},
		},
	}
	spec.Paths["/contents/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find content by id",
			Tags:       []string{"contents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Content id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Content record", "Content"),
				404: {Description: "Not found"},
			},
		},
	}
	spec.Paths["/contents/process"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Run the full pipeline over one item",
			Tags:        []string{"contents"},
			RequestBody: openapi.RequestBodyJSON("Input", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Pipeline result", "Output"),
			},
		},
	}
	spec.Paths["/contents/quick"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Run the reduced pipeline; results never publish directly",
			Tags:        []string{"contents"},
			RequestBody: openapi.RequestBodyJSON("Input", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Pipeline result", "Output"),
			},
		},
	}
	spec.Paths["/contents/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Process a batch of items sequentially",
			Tags:        []string{"contents"},
			RequestBody: openapi.RequestBodyJSON("BatchRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Batch summary", "Summary"),
			},
		},
	}
	spec.Paths["/contents/{id}/approve"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Publish a draft after editorial review",
			Tags:        []string{"contents"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Content id")},
			RequestBody: openapi.RequestBodyJSON("ReviewCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated content", "Content"),
				409: {Description: "Already reviewed"},
			},
		},
	}
	spec.Paths["/contents/{id}/reject"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Close a draft after editorial review",
			Tags:        []string{"contents"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Content id")},
			RequestBody: openapi.RequestBodyJSON("ReviewCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated content", "Content"),
				409: {Description: "Already reviewed"},
			},
		},
	}

	spec.Paths["/blocks"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List writing blocks",
			Tags:    []string{"blocks"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("type", "string", "Filter by section type", false),
				openapi.QueryParam("cluster_id", "string", "Filter by style cluster", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of blocks", "Block"),
			},
		},
	}
	spec.Paths["/blocks/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find block by id",
			Tags:       []string{"blocks"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Block id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Block record", "Block"),
				404: {Description: "Not found"},
			},
		},
	}
	spec.Paths["/blocks/score"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Score content against the confidence gate",
			Tags:    []string{"blocks"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Confidence verdict", "ConfidenceResult"),
			},
		},
	}
	spec.Paths["/blocks/{id}/outcome"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Record a publish outcome against a block",
			Tags:       []string{"blocks"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Block id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated block", "Block"),
			},
		},
	}

	spec.Paths["/images/resolve"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Resolve an image for a query",
			Tags:    []string{"images"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("query", "string", "Search query", true),
				openapi.QueryParam("category", "string", "Content category", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Resolved image", "ImageResult"),
			},
		},
	}

	spec.Paths["/validation/validate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Run the validation checks over submitted content",
			Tags:    []string{"validation"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Validation verdict", "ValidationResult"),
			},
		},
	}

	return spec
}
