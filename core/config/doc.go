// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides configuration loading for the
//              IxCompiler foundation.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
// - 2026-08-25 v0.1.1: fsnotify-based watching

// Package config provides configuration loading and access for the
// IxCompiler foundation.
//
// Configuration files are TOML or YAML (JSON parses as a YAML subset);
// the format is detected from the file extension unless forced through
// LoadOptions. Values are read with dot-notation keys and typed getters
// that accept an optional default:
//
//	cfg, err := config.Load("ixcompiler.toml")
//	if err != nil {
//	    return err
//	}
//
//	level := cfg.GetString("log.level", "info")
//	maxNodes := cfg.GetInt("arena.max_nodes", 0)
//
// A typical engine configuration:
//
//	[log]
//	level  = "debug"
//	format = "console"
//
//	[arena]
//	max_nodes = 4096
//	trace     = false
//
// Hot reloading watches the file's parent directory through fsnotify, so
// editors that save by write-then-rename still trigger a reload; rapid
// event bursts are debounced into a single reload. Handlers registered
// with OnChange receive before/after snapshots:
//
//	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
//	    logger.Info("configuration reloaded")
//	})
//
// All access is safe for concurrent use.
package config
