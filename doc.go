// Package linkcfg assembles the configuration core of a link checker.
//
// NewApp builds an Fx application that provides a structured diagnostics
// logger and a *config.Configuration layered from the system wide and per
// user configuration files. Downstream modules consume the configuration
// through dependency injection:
//
//	app := linkcfg.NewApp(
//		linkcfg.WithConfigFiles("linkcheckerrc"),
//		linkcfg.WithModules(fx.Invoke(func(cfg *config.Configuration) {
//			// use cfg.Threads, cfg.Authentication, cfg.Links ...
//		})),
//	)
package linkcfg
