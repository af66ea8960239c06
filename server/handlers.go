// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/metrics"
	"github.com/katalvlaran/diffgap/report"
)

// errBadQuery marks client errors in query parsing.
var errBadQuery = errors.New("bad query")

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := s.parseInput(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	method, opts, err := s.parseOptions(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	withPoints, err := parseBool(q, "withPoints", false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	out, err := calculi.Run(in, opts...)
	metrics.ObserveRun(method, out, time.Since(start), err)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := report.NewResponse(in, out, withPoints)
	resp.RequestID = RequestID(r.Context())
	writeJSON(w, http.StatusOK, resp)
}

// sweepResponse is the JSON shape of /v1/sweep.
type sweepResponse struct {
	RequestID string              `json:"requestId,omitempty"`
	Input     calculi.Input       `json:"input"`
	Sweep     calculi.SweepResult `json:"sweep"`
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := s.parseInput(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sigmas, err := parseFloats(q, "sigmas", s.sigmas)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(sigmas) > s.maxSigmas {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%v: %d sigmas exceeds %d", errBadQuery, len(sigmas), s.maxSigmas))
		return
	}
	// Exact references cost a full eigen solve per embedding and σ.
	if exact, err := parseBool(q, "exact", false); err != nil || exact {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%v: exact is not supported on sweeps", errBadQuery))
		return
	}
	_, opts, err := s.parseOptions(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := builder.BuildSimplex(in.PointCount, in.Seed, s.sampler...)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	sw, err := calculi.Sweep(points, sigmas, opts...)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sweepResponse{RequestID: RequestID(r.Context()), Input: in, Sweep: sw})
}

// parseInput reads seed, points and sigma, falling back to the defaults.
func (s *Server) parseInput(q url.Values) (calculi.Input, error) {
	in := s.defaults
	var err error
	if v := q.Get("seed"); v != "" {
		if in.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return in, fmt.Errorf("%w: seed=%q", errBadQuery, v)
		}
	}
	if v := q.Get("points"); v != "" {
		if in.PointCount, err = strconv.Atoi(v); err != nil {
			return in, fmt.Errorf("%w: points=%q", errBadQuery, v)
		}
	}
	if v := q.Get("sigma"); v != "" {
		if in.Sigma, err = strconv.ParseFloat(v, 64); err != nil {
			return in, fmt.Errorf("%w: sigma=%q", errBadQuery, v)
		}
	}
	if in.PointCount > s.maxPoints {
		return in, fmt.Errorf("%w: points=%d exceeds %d", errBadQuery, in.PointCount, s.maxPoints)
	}
	if err = in.Validate(); err != nil {
		return in, err
	}

	return in, nil
}

// parseOptions returns the server options followed by the per-request method
// and exact flag.
func (s *Server) parseOptions(q url.Values) (calculi.Method, []calculi.Option, error) {
	method, err := calculi.ParseMethod(q.Get("method"))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errBadQuery, err)
	}
	exact, err := parseBool(q, "exact", false)
	if err != nil {
		return "", nil, err
	}
	opts := append([]calculi.Option(nil), s.opts...)
	opts = append(opts, calculi.WithSamplerOptions(s.sampler...), calculi.WithMethod(method))
	if exact {
		opts = append(opts, calculi.WithExact(true))
	}

	return method, opts, nil
}

func parseBool(q url.Values, key string, def bool) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", errBadQuery, key, v)
	}

	return b, nil
}

func parseFloats(q url.Values, key string, def []float64) ([]float64, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	parts := strings.Split(v, ",")
	out := make([]float64, len(parts))
	var err error
	for i, p := range parts {
		if out[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return nil, fmt.Errorf("%w: %s=%q", errBadQuery, key, v)
		}
	}

	return out, nil
}

// statusFor maps precondition violations to 400 and everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculi.ErrInvalidSigma),
		errors.Is(err, calculi.ErrInvalidPointCount),
		errors.Is(err, builder.ErrBadSize),
		errors.Is(err, errBadQuery):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
