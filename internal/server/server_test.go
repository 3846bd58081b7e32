package server

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/theirongolddev/snapcalc/internal/params"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New(Config{
		History: params.Builtin(),
		Logger:  log.New(io.Discard, "", 0),
	})
	s.now = func() time.Time { return time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func do(s *Server, method, uri, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handle(&ctx)
	return &ctx
}

func wantAmount(t *testing.T, name string, got *decimal.Decimal, want int64) {
	t.Helper()
	if got == nil {
		t.Errorf("%s missing, want %d", name, want)
		return
	}
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("%s = %s, want %d", name, got, want)
	}
}

func TestCalculate(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodPost, "/v1/calculate", `{
		"household_size": "1",
		"earned_income": ["950"],
		"shelter_costs": ["400"]
	}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, body %s", got, ctx.Response.Body())
	}
	var resp CalculateResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := uuid.Parse(resp.CalculationID); err != nil {
		t.Errorf("calculation_id %q is not a UUID", resp.CalculationID)
	}
	if resp.ParamsVersion != "FFY2019" {
		t.Errorf("params_version = %q", resp.ParamsVersion)
	}
	wantAmount(t, "adjusted_income", resp.Result.AdjustedIncome, 600)
	wantAmount(t, "benefit_allotment", resp.Result.BenefitAllotment, 163)
	if !resp.Result.PassesIncomeTest {
		t.Error("passes_income_test = false")
	}
}

func TestCalculateKeepsExactAmounts(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodPost, "/v1/calculate", `{
		"household_size": "1",
		"earned_income": ["0.1", "0.2"]
	}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, body %s", got, ctx.Response.Body())
	}
	if !bytes.Contains(ctx.Response.Body(), []byte(`"gross_earned_income":"0.3"`)) {
		t.Errorf("body = %s, want gross_earned_income \"0.3\"", ctx.Response.Body())
	}
}

func TestCalculateStopsAtIncomeTest(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodPost, "/v1/calculate", `{
		"household_size": "10",
		"unearned_income": ["7700"],
		"deductions": ["5000"],
		"shelter_costs": ["2000"]
	}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, body %s", got, ctx.Response.Body())
	}
	var resp CalculateResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result.PassesIncomeTest || !resp.Result.AboveIncomeLimit {
		t.Fatalf("result = %+v, want above the limit", resp.Result)
	}
	if resp.Result.BenefitAllotment != nil || resp.Result.AdjustedIncome != nil {
		t.Errorf("figures past the income test should be omitted: %s", ctx.Response.Body())
	}
	if bytes.Contains(ctx.Response.Body(), []byte("benefit_allotment")) {
		t.Errorf("body mentions benefit_allotment: %s", ctx.Response.Body())
	}
}

func TestRunFailsWhenAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer func() { _ = ln.Close() }()

	s := New(Config{Addr: ln.Addr().String(), Logger: log.New(io.Discard, "", 0)})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Run(ctx); err == nil {
		t.Fatal("Run should fail on an address that is already bound")
	}
}

func TestCalculateFieldError(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodPost, "/v1/calculate", `{
		"household_size": "2",
		"earned_income": ["100", "lots"]
	}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", got)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Field != "earned_income[1]" || resp.Kind != "not_a_number" {
		t.Errorf("error = %+v", resp)
	}
}

func TestCalculateBadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		want   int
	}{
		{"malformed json", fasthttp.MethodPost, "/v1/calculate", `{"household_size":`, fasthttp.StatusBadRequest},
		{"unknown tier", fasthttp.MethodPost, "/v1/calculate", `{"household_size":"1","utility_tier":"solar"}`, fasthttp.StatusBadRequest},
		{"bad as_of", fasthttp.MethodPost, "/v1/calculate", `{"household_size":"1","as_of":"soon"}`, fasthttp.StatusBadRequest},
		{"wrong method", fasthttp.MethodGet, "/v1/calculate", "", fasthttp.StatusMethodNotAllowed},
		{"unknown path", fasthttp.MethodGet, "/v2/anything", "", fasthttp.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, tt.method, tt.uri, tt.body)
			if got := ctx.Response.StatusCode(); got != tt.want {
				t.Errorf("status = %d, want %d (body %s)", got, tt.want, ctx.Response.Body())
			}
		})
	}
}

func TestParams(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodGet, "/v1/params?as_of=2019-01-15", "")

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d", got)
	}
	var resp ParamsPayload
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version != "FFY2019" || resp.EffectiveFrom != "2018-10-01" {
		t.Errorf("version = %q effective = %q", resp.Version, resp.EffectiveFrom)
	}
	if !resp.GrossIncomeLimit.BySize["1"].Equal(decimal.NewFromInt(1860)) ||
		!resp.UtilityStandard["with_heat"].Equal(decimal.NewFromInt(808)) {
		t.Errorf("payload = %+v", resp)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	ctx := do(s, fasthttp.MethodGet, "/healthz", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK || string(ctx.Response.Body()) != "ok\n" {
		t.Errorf("healthz = %d %q", ctx.Response.StatusCode(), ctx.Response.Body())
	}
}
