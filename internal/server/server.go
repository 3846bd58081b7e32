// Package server exposes the eligibility engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/theirongolddev/snapcalc/internal/engine"
	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr    string
	History params.History
	Logger  *log.Logger
}

// Server answers calculation requests. Requests share only the read-only
// parameter history.
type Server struct {
	cfg Config
	srv *fasthttp.Server
	now func() time.Time
}

// New returns a server for cfg.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}
	if len(cfg.History) == 0 {
		cfg.History = params.Builtin()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "snapcalc: ", log.LstdFlags)
	}

	s := &Server{cfg: cfg, now: time.Now}
	s.srv = &fasthttp.Server{
		Handler:            s.Handle,
		Name:               "snapcalc",
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
		MaxRequestBodySize: 64 << 10,
	}
	return s
}

// Run serves until ctx is canceled. It returns an error right away when the
// address cannot be bound.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	s.cfg.Logger.Printf("listening on http://%s (params %s)", ln.Addr(), s.cfg.History.Latest().Version)

	select {
	case <-ctx.Done():
		s.cfg.Logger.Printf("shutting down")
		return s.srv.Shutdown()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}

// Handle routes one request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok\n")
	case "/v1/calculate":
		if !ctx.IsPost() {
			s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusMethodNotAllowed, Message: "method not allowed"})
			return
		}
		s.handleCalculate(ctx)
	case "/v1/params":
		if !ctx.IsGet() {
			s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusMethodNotAllowed, Message: "method not allowed"})
			return
		}
		s.handleParams(ctx)
	default:
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusNotFound, Message: "not found"})
	}
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	var req CalculateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: "invalid request body: " + err.Error()})
		return
	}

	p, err := s.paramsAt(req.AsOf)
	if err != nil {
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: err.Error()})
		return
	}
	form, err := req.Form()
	if err != nil {
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: err.Error()})
		return
	}

	res, err := calculate(form, p)
	if err != nil {
		if fe, ok := input.AsFieldError(err); ok {
			s.writeError(ctx, fieldErrorResponse(fasthttp.StatusUnprocessableEntity, fe))
			return
		}
		s.cfg.Logger.Printf("calculate: %v", err)
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusInternalServerError, Message: "calculation failed"})
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, CalculateResponse{
		CalculationID: uuid.NewString(),
		ParamsVersion: p.Version,
		Result:        NewResultPayload(res),
	})
}

func (s *Server) handleParams(ctx *fasthttp.RequestCtx) {
	p, err := s.paramsAt(string(ctx.QueryArgs().Peek("as_of")))
	if err != nil {
		s.writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: err.Error()})
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, NewParamsPayload(p))
}

func (s *Server) paramsAt(asOf string) (params.ProgramParameters, error) {
	at := s.now()
	if asOf != "" {
		t, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return params.ProgramParameters{}, fmt.Errorf("as_of %q is not a YYYY-MM-DD date", asOf)
		}
		at = t
	}
	p, ok := s.cfg.History.At(at)
	if !ok {
		return params.ProgramParameters{}, fmt.Errorf("no parameter table available")
	}
	return p, nil
}

func calculate(form model.HouseholdForm, p params.ProgramParameters) (model.CalculationResult, error) {
	in, err := input.ParseHousehold(form)
	if err != nil {
		return model.CalculationResult{}, err
	}
	return engine.Calculate(in, p)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.cfg.Logger.Printf("encode response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, resp ErrorResponse) {
	s.writeJSON(ctx, resp.Status, resp)
}
