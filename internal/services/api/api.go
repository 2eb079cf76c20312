// Package api provides the HTTP API for the application
package api

import (
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/platform/config"
	"wordwarden/internal/platform/logger"
	phttp "wordwarden/internal/platform/net/http"

	modkit "wordwarden/internal/modkit"
	"wordwarden/internal/modkit/httpkit"
	"wordwarden/internal/modkit/module"
	"wordwarden/internal/modkit/swaggerkit"

	apicheck "wordwarden/internal/services/api/check/module"
	dictmod "wordwarden/internal/services/api/dict/module"
	metamod "wordwarden/internal/services/api/meta/module"

	// Worker check module (owns the Checker port)
	workercheck "wordwarden/internal/services/check/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Dict           dictkit.Provider
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Dict: opt.Dict,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the WORKER check module first and extract its Checker port
	workerCheck := workercheck.New(deps, workercheck.Options{})
	checker := module.MustPortsOf[workercheck.Ports](workerCheck).Checker

	// Inject that Checker into the API check module
	apiCheck := apicheck.New(
		deps,
		modkit.WithPorts(apicheck.Ports{
			Checker: checker,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		dictmod.New(deps),
		workerCheck, // include worker so its ports are registered
		apiCheck,    // API module that depends on the worker's Checker
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
