// Package logger expone un logger Zap singleton con scoping por contexto.
//
// Init se llama una vez en main.go; el middleware de logging inyecta un
// logger por request (request_id, method, path) que controllers, services y
// el cliente de Auth0 recuperan con From(ctx).
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
//	defer logger.Sync()
//
//	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("Login"))
//	log.Info("login relayed", logger.Upstream("auth0"))
//
// Nunca loguear passwords, client_secret ni tokens emitidos por el provider.
package logger
