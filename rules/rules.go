//go:build ruleguard

// Package gorules contains custom linting rules for golangci-lint via ruleguard.
// They keep the engines on the project's error, logging and immutability conventions.
package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// StdlibErrors flags direct use of the standard errors package. The project
// errors package re-exports the passthroughs and adds categories.
func StdlibErrors(m dsl.Matcher) {
	m.Import("errors")

	m.Match(`errors.New($msg)`).
		Where(m.File().Imports("errors") && !m.File().PkgPath.Matches(`internal/errors$`)).
		Report("use errors.NewStd($msg) or errors.Newf(...).Build() from internal/errors")
}

// ModuleLogger flags package-level slog calls, which bypass the module logger
// and the configured handler.
func ModuleLogger(m dsl.Matcher) {
	m.Import("log/slog")

	m.Match(`slog.Debug($*_)`, `slog.Info($*_)`, `slog.Warn($*_)`, `slog.Error($*_)`).
		Where(!m.File().PkgPath.Matches(`internal/logger$`)).
		Report("log through GetLogger() so records carry the module field")
}

// TreeMutation flags appends to a node's children outside the taxonomy
// package. Views built by the engine may be shared between goroutines.
func TreeMutation(m dsl.Matcher) {
	m.Match(`$n.Children = append($n.Children, $*_)`, `$n.CumulativeCount = $_`).
		Where(m["n"].Type.Is("*taxonomy.Node") && !m.File().PkgPath.Matches(`internal/taxonomy$`)).
		Report("taxonomy nodes are immutable once built; derive a new tree with the taxonomy package")
}

// WaitGroupModernize detects WaitGroup patterns that can use wg.Go().
func WaitGroupModernize(m dsl.Matcher) {
	m.Match(`go func() { defer $wg.Done(); $*_ }()`).
		Where(m["wg"].Type.Is("*sync.WaitGroup")).
		Report("Use $wg.Go(func() { ... }) instead of go func() { defer $wg.Done(); ... }()").
		Suggest("$wg.Go(func() { $*_ })")

	m.Match(`$wg.Add(1)`).
		Where(m["wg"].Type.Is("*sync.WaitGroup")).
		Report("Consider using $wg.Go() which calls Add(1) automatically")
}

// CacheWithJanitor flags go-cache instances with a cleanup interval. The
// janitor goroutine outlives the cache owner and trips goroutine leak checks.
func CacheWithJanitor(m dsl.Matcher) {
	m.Import("github.com/patrickmn/go-cache")

	m.Match(`cache.New($ttl, $interval)`).
		Where(!(m["interval"].Const && m["interval"].Value.Int() == 0)).
		Report("create caches with a zero cleanup interval and call DeleteExpired on misses")
}
