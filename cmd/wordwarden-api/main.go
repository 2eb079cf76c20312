// @title         Wordwarden API
// @version       0.1.0
// @description   Diff scoped spell checking and dictionary lookups

package main

import (
	"context"

	"wordwarden/internal/adapters/dictionary"
	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/platform/config"
	"wordwarden/internal/platform/logger"
	phttp "wordwarden/internal/platform/net/http"

	"wordwarden/internal/services/api"
	checkmod "wordwarden/internal/services/check/module"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// the lint config carries the suggestion mode the provider trains with
	opts := checkmod.FromConfig(root)
	rc, err := lintrc.Load(opts.ConfigPath)
	if err != nil {
		l.Panic().Err(err).Msg("lint config load failed")
	}

	// one cached provider shared by every module, warmed on the
	// configured language before the server takes traffic
	provider := dictkit.Cached(dictionary.NewProvider(opts.DictDir, rc.SuggestionMode))
	dictkit.MustResolve(context.Background(), provider, rc.Language)

	// http server (reads CORE_API_HTTP_ADDR / CORE_API_HTTP_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Dict:           provider,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
