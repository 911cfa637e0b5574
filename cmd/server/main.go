package main

import (
	"log"
	"net/http"

	"lingua-eval/internal/config"
	"lingua-eval/internal/handle"
	"lingua-eval/internal/semantic"
	"lingua-eval/internal/semantic/gemini"
	"lingua-eval/internal/semantic/gpt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	engines := &semantic.Engines{
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	h := handle.New(cfg.Eval, engines, cfg.FallbackEngine)

	mux.HandleFunc("/v1/evaluate", h.Evaluate)

	addr := ":" + cfg.Port
	log.Printf("lingua-eval listening on %s (fallback=%s)", addr, cfg.FallbackEngine)
	log.Fatal(http.ListenAndServe(addr, mux))
}
