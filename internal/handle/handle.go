package handle

import (
	"encoding/json"
	"net/http"

	"lingua-eval/internal/eval"
	"lingua-eval/internal/semantic"
)

type Handle struct {
	evalCfg       eval.Config
	engs          *semantic.Engines
	defaultEngine string
}

func New(evalCfg eval.Config, engs *semantic.Engines, defaultEngine string) *Handle {
	return &Handle{
		evalCfg:       evalCfg,
		engs:          engs,
		defaultEngine: defaultEngine,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
