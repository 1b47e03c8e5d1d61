package storage

import (
	"net/url"
	"path/filepath"
)

type Scheme string

const (
	FileScheme  Scheme = "file"
	StdioScheme Scheme = "stdio"
	HTTPScheme  Scheme = "http"
	HTTPSScheme Scheme = "https"
	S3Scheme    Scheme = "s3"
)

func knownScheme(s Scheme) bool {
	switch s {
	case FileScheme, StdioScheme, HTTPScheme, HTTPSScheme, S3Scheme:
		return true
	}
	return false
}

type URI url.URL

// ParseURI parses path with url.Parse.  A path without a recognized
// scheme is treated as a file and resolved to an absolute path, so
// bare relative paths and Windows-style paths with embedded colons
// both work.
func ParseURI(path string) (*URI, error) {
	if path == "" {
		return &URI{}, nil
	}
	if path == "-" {
		return &URI{Scheme: string(StdioScheme), Path: "stdin"}, nil
	}
	u, err := url.Parse(path)
	if err != nil || !knownScheme(Scheme(u.Scheme)) {
		return parseBarePath(path)
	}
	return (*URI)(u), nil
}

func MustParseURI(path string) *URI {
	u, err := ParseURI(path)
	if err != nil {
		panic(err)
	}
	return u
}

func parseBarePath(path string) (*URI, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &URI{
		Scheme: string(FileScheme),
		Path:   filepath.ToSlash(abs),
	}, nil
}

func (u *URI) String() string {
	return (*url.URL)(u).String()
}

func (u *URI) HasScheme(s Scheme) bool {
	return Scheme(u.Scheme) == s
}

// Filepath returns the URI's path in the local file system's notation.
func (u *URI) Filepath() string {
	return filepath.FromSlash(u.Path)
}
