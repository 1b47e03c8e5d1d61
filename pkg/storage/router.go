package storage

import (
	"context"
	"fmt"
	"io"
)

// Router dispatches engine calls by URI scheme.
type Router struct {
	engines map[Scheme]Engine
}

var _ Engine = (*Router)(nil)

func NewRouter() *Router {
	return &Router{engines: make(map[Scheme]Engine)}
}

func (r *Router) Enable(scheme Scheme) {
	switch scheme {
	case FileScheme:
		r.engines[FileScheme] = NewFileSystem()
	case StdioScheme:
		r.engines[StdioScheme] = NewStdioEngine()
	case HTTPScheme, HTTPSScheme:
		engine := NewHTTP()
		r.engines[HTTPScheme] = engine
		r.engines[HTTPSScheme] = engine
	case S3Scheme:
		r.engines[S3Scheme] = NewS3()
	}
}

// Register installs a custom engine for a scheme, replacing any
// enabled default.  Useful for tests.
func (r *Router) Register(scheme Scheme, engine Engine) {
	r.engines[scheme] = engine
}

func (r *Router) lookup(u *URI) (Engine, error) {
	scheme := Scheme(u.Scheme)
	if scheme == "" {
		scheme = FileScheme
	}
	engine, ok := r.engines[scheme]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported storage scheme %q", u, u.Scheme)
	}
	return engine, nil
}

func (r *Router) Get(ctx context.Context, u *URI) (Reader, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return nil, err
	}
	return engine.Get(ctx, u)
}

func (r *Router) Put(ctx context.Context, u *URI) (io.WriteCloser, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return nil, err
	}
	return engine.Put(ctx, u)
}

func (r *Router) Exists(ctx context.Context, u *URI) (bool, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return false, err
	}
	return engine.Exists(ctx, u)
}

func (r *Router) Size(ctx context.Context, u *URI) (int64, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return 0, err
	}
	return engine.Size(ctx, u)
}

// NewRemoteEngine routes http(s) and s3 URIs.
func NewRemoteEngine() *Router {
	router := NewRouter()
	router.Enable(HTTPScheme)
	router.Enable(S3Scheme)
	return router
}

// NewLocalEngine routes everything NewRemoteEngine does plus local
// files and stdio.
func NewLocalEngine() *Router {
	router := NewRemoteEngine()
	router.Enable(FileScheme)
	router.Enable(StdioScheme)
	return router
}
