package contents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/contents"
	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

type fakeSystem struct {
	list    func(context.Context, pagination.PageRequest, contents.Filters) (*pagination.PageResult[contents.Content], error)
	find    func(context.Context, uuid.UUID) (*contents.Content, error)
	process func(context.Context, pipeline.Input) *pipeline.Output
	quick   func(context.Context, pipeline.Input) *pipeline.Output
	batch   func(context.Context, []pipeline.Input, bool) pipeline.Summary
	approve func(context.Context, uuid.UUID, contents.ReviewCommand) (*contents.Content, error)
	reject  func(context.Context, uuid.UUID, contents.ReviewCommand) (*contents.Content, error)
}

func (f *fakeSystem) Handler(maxBodySize int64) *contents.Handler {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	return contents.NewHandler(f, maxBodySize, discardLogger(), cfg)
}

func (f *fakeSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters contents.Filters,
) (*pagination.PageResult[contents.Content], error) {
	if f.list != nil {
		return f.list(ctx, page, filters)
	}
	result := pagination.NewPageResult([]contents.Content{}, 0, 1, 20)
	return &result, nil
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*contents.Content, error) {
	if f.find != nil {
		return f.find(ctx, id)
	}
	return nil, contents.ErrNotFound
}

func (f *fakeSystem) Process(ctx context.Context, input pipeline.Input) *pipeline.Output {
	return f.process(ctx, input)
}

func (f *fakeSystem) QuickProcess(ctx context.Context, input pipeline.Input) *pipeline.Output {
	return f.quick(ctx, input)
}

func (f *fakeSystem) Batch(ctx context.Context, inputs []pipeline.Input, quick bool) pipeline.Summary {
	return f.batch(ctx, inputs, quick)
}

func (f *fakeSystem) Approve(ctx context.Context, id uuid.UUID, cmd contents.ReviewCommand) (*contents.Content, error) {
	return f.approve(ctx, id, cmd)
}

func (f *fakeSystem) Reject(ctx context.Context, id uuid.UUID, cmd contents.ReviewCommand) (*contents.Content, error) {
	return f.reject(ctx, id, cmd)
}

func (f *fakeSystem) Save(ctx context.Context, out pipeline.Output) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, sys contents.System) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(10<<20).Routes())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", contents.ErrNotFound, http.StatusNotFound},
		{"duplicate", contents.ErrDuplicate, http.StatusConflict},
		{"already reviewed", contents.ErrAlreadyClosed, http.StatusConflict},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", contents.ErrNotFound), http.StatusNotFound},
		{"wrapped already reviewed", fmt.Errorf("approve failed: %w", contents.ErrAlreadyClosed), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contents.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all filters", func(t *testing.T) {
		values := url.Values{}
		values.Set("status", "draft")
		values.Set("category", "Health")
		values.Set("risk", "high")

		f := contents.FiltersFromQuery(values)

		if f.Status == nil || *f.Status != pipeline.StatusDraft {
			t.Errorf("Status = %v, want draft", f.Status)
		}
		if f.Category == nil || *f.Category != analysis.CategoryHealth {
			t.Errorf("Category = %v, want health", f.Category)
		}
		if f.Risk == nil || *f.Risk != analysis.RiskHigh {
			t.Errorf("Risk = %v, want high", f.Risk)
		}
	})

	t.Run("empty query leaves filters nil", func(t *testing.T) {
		f := contents.FiltersFromQuery(url.Values{})
		if f.Status != nil || f.Category != nil || f.Risk != nil {
			t.Errorf("FiltersFromQuery(empty) = %+v, want zero value", f)
		}
	})
}

func TestProcessEndpoint(t *testing.T) {
	var got pipeline.Input
	sys := &fakeSystem{
		process: func(_ context.Context, input pipeline.Input) *pipeline.Output {
			got = input
			return &pipeline.Output{
				ContentID: uuid.New(),
				Success:   true,
				Status:    pipeline.StatusPublished,
				Headline:  input.Title,
			}
		},
	}
	srv := serve(t, sys)

	input := pipeline.Input{
		Title:    "మహేష్ బాబు కొత్త అవార్డు",
		Body:     "మహేష్ బాబు జాతీయ స్థాయిలో అవార్డు అందుకున్నారు.",
		Category: "entertainment",
	}

	resp := postJSON(t, srv.URL+"/contents/process", input)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out pipeline.Output
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if got.Title != input.Title {
		t.Errorf("forwarded title = %q, want %q", got.Title, input.Title)
	}
	if out.Status != pipeline.StatusPublished {
		t.Errorf("Status = %q, want published", out.Status)
	}
	if out.ContentID == uuid.Nil {
		t.Error("ContentID not assigned")
	}
}

func TestQuickEndpoint(t *testing.T) {
	sys := &fakeSystem{
		quick: func(_ context.Context, input pipeline.Input) *pipeline.Output {
			return &pipeline.Output{
				ContentID: uuid.New(),
				Success:   true,
				Status:    pipeline.StatusDraft,
			}
		},
	}
	srv := serve(t, sys)

	resp := postJSON(t, srv.URL+"/contents/quick", pipeline.Input{Title: "టెస్ట్", Body: "టెస్ట్"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out pipeline.Output
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Status != pipeline.StatusDraft {
		t.Errorf("Status = %q, want draft", out.Status)
	}
}

func TestBatchEndpoint(t *testing.T) {
	var gotQuick bool
	var gotCount int
	sys := &fakeSystem{
		batch: func(_ context.Context, inputs []pipeline.Input, quick bool) pipeline.Summary {
			gotQuick = quick
			gotCount = len(inputs)
			return pipeline.Summary{Success: len(inputs)}
		},
	}
	srv := serve(t, sys)

	req := contents.BatchRequest{
		Items: []pipeline.Input{
			{Title: "ఒకటి", Body: "ఒకటి"},
			{Title: "రెండు", Body: "రెండు"},
		},
		Quick: true,
	}

	resp := postJSON(t, srv.URL+"/contents/batch", req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var summary pipeline.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !gotQuick {
		t.Error("quick flag not forwarded")
	}
	if gotCount != 2 {
		t.Errorf("forwarded %d items, want 2", gotCount)
	}
	if summary.Success != 2 {
		t.Errorf("Success = %d, want 2", summary.Success)
	}
}

func TestApproveEndpoint(t *testing.T) {
	id := uuid.New()

	t.Run("approves open draft", func(t *testing.T) {
		var gotCmd contents.ReviewCommand
		sys := &fakeSystem{
			approve: func(_ context.Context, gotID uuid.UUID, cmd contents.ReviewCommand) (*contents.Content, error) {
				gotCmd = cmd
				return &contents.Content{ID: gotID, Status: pipeline.StatusPublished}, nil
			},
		}
		srv := serve(t, sys)

		resp := postJSON(t, srv.URL+"/contents/"+id.String()+"/approve",
			contents.ReviewCommand{ReviewedBy: "editor@sanchika"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var c contents.Content
		if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
			t.Fatalf("decode response: %v", err)
		}

		if gotCmd.ReviewedBy != "editor@sanchika" {
			t.Errorf("ReviewedBy = %q, want editor@sanchika", gotCmd.ReviewedBy)
		}
		if c.Status != pipeline.StatusPublished {
			t.Errorf("Status = %q, want published", c.Status)
		}
	})

	t.Run("conflict when already reviewed", func(t *testing.T) {
		sys := &fakeSystem{
			approve: func(context.Context, uuid.UUID, contents.ReviewCommand) (*contents.Content, error) {
				return nil, contents.ErrAlreadyClosed
			},
		}
		srv := serve(t, sys)

		resp := postJSON(t, srv.URL+"/contents/"+id.String()+"/approve",
			contents.ReviewCommand{ReviewedBy: "editor@sanchika"})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		sys := &fakeSystem{}
		srv := serve(t, sys)

		resp := postJSON(t, srv.URL+"/contents/not-a-uuid/approve",
			contents.ReviewCommand{ReviewedBy: "editor@sanchika"})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestRejectEndpoint(t *testing.T) {
	id := uuid.New()
	sys := &fakeSystem{
		reject: func(_ context.Context, gotID uuid.UUID, cmd contents.ReviewCommand) (*contents.Content, error) {
			return &contents.Content{ID: gotID, Status: pipeline.StatusRejected}, nil
		},
	}
	srv := serve(t, sys)

	resp := postJSON(t, srv.URL+"/contents/"+id.String()+"/reject",
		contents.ReviewCommand{ReviewedBy: "editor@sanchika"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var c contents.Content
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if c.Status != pipeline.StatusRejected {
		t.Errorf("Status = %q, want rejected", c.Status)
	}
}

func TestFindEndpoint(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		sys := &fakeSystem{}
		srv := serve(t, sys)

		resp, err := http.Get(srv.URL + "/contents/" + uuid.NewString())
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		sys := &fakeSystem{}
		srv := serve(t, sys)

		resp, err := http.Get(srv.URL + "/contents/not-a-uuid")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}
