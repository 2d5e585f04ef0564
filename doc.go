// Package aioconfig wires the layered configuration store into an Fx
// application for command-line tools.
//
//	app := aioconfig.NewApp(
//	    aioconfig.WithLogLevel("debug"),
//	    aioconfig.WithConfigStore(),
//	    aioconfig.WithModules(fx.Invoke(func(store *config.Store) {
//	        fmt.Println(store.Get("runtime.namespace"))
//	    })),
//	)
//	os.Exit(app.Run())
//
// Run is the entry point of a command. It starts every module, blocks until
// a module calls fx.Shutdowner or the process receives SIGINT or SIGTERM,
// stops the modules and returns the exit code for os.Exit. Callers that
// manage the lifecycle themselves use Start and Stop with their own context.
//
// See package config for the store itself.
package aioconfig
