// Package res loads the external resources a résumé refers to: profile
// pictures given as local paths, http(s) URLs or data URIs, and style sheets.
package res

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeUnknown is an unknown resource type
	ResourceTypeUnknown ResourceType = iota
	// ResourceTypeImage is an image resource
	ResourceTypeImage
	// ResourceTypeStyle is a style override sheet (CSS or TOML)
	ResourceTypeStyle
	// ResourceTypeOther is any other resource
	ResourceTypeOther
)

// MaxResourceSize caps how much is read from a single resource.
const MaxResourceSize = 16 << 20

// Resource represents a loaded resource
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Loader handles loading resources. It is safe for concurrent use.
type Loader struct {
	// BaseDir resolves relative paths. Empty means the working directory.
	BaseDir string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string
	client      *http.Client
}

// NewLoader creates a new resource loader
func NewLoader(baseDir string) *Loader {
	return &Loader{
		BaseDir:     baseDir,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// SetHTTPClient replaces the client used for remote resources.
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// AddSearchPath adds a directory to search for local resources
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a resource from a path, URL or data URI. Results are cached by
// reference.
func (l *Loader) Load(ref string) (*Resource, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("empty resource reference")
	}

	l.cacheLock.RLock()
	if res, ok := l.cache[ref]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	var (
		res *Resource
		err error
	)
	switch {
	case strings.HasPrefix(ref, "data:"):
		res, err = parseDataURL(ref)
	case isRemote(ref):
		res, err = l.loadRemote(ref)
	default:
		res, err = l.loadLocal(l.resolvePath(ref))
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[ref] = res
	l.cacheLock.Unlock()
	return res, nil
}

// LoadImage loads a resource and checks that it is an image.
func (l *Loader) LoadImage(ref string) (*Resource, error) {
	res, err := l.Load(ref)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeImage {
		return nil, fmt.Errorf("resource is not an image: %s (%s)", shorten(ref), res.MimeType)
	}
	return res, nil
}

// LoadStyle loads a style override sheet.
func (l *Loader) LoadStyle(ref string) (*Resource, error) {
	res, err := l.Load(ref)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeStyle {
		return nil, fmt.Errorf("resource is not a style sheet: %s", shorten(ref))
	}
	return res, nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// parseDataURL parses a data URL (RFC 2397).
//
//	data:image/png;base64,<base64>
//	data:text/css,name%7Bcolor:red%7D
func parseDataURL(u string) (*Resource, error) {
	parts := strings.SplitN(strings.TrimPrefix(u, "data:"), ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URL")
	}
	meta, payload := parts[0], parts[1]

	mime := "text/plain"
	isBase64 := false
	comps := strings.Split(meta, ";")
	if comps[0] != "" {
		mime = strings.ToLower(comps[0])
	}
	for _, c := range comps[1:] {
		if strings.EqualFold(strings.TrimSpace(c), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		d, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else if d, err := url.PathUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	r := &Resource{URL: shorten(u), Data: data, MimeType: mime}
	r.Type = determineResourceType(r.MimeType, "", data)
	return r, nil
}

func (l *Loader) resolvePath(ref string) string {
	if strings.HasPrefix(ref, "file://") {
		ref = strings.TrimPrefix(ref, "file://")
	}
	if filepath.IsAbs(ref) || l.BaseDir == "" {
		return ref
	}
	return filepath.Join(l.BaseDir, ref)
}

// loadRemote loads a resource from a remote URL
func (l *Loader) loadRemote(urlStr string) (*Resource, error) {
	resp, err := l.client.Get(urlStr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error fetching %s: %s", urlStr, resp.Status)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, err
	}

	mime := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	res := &Resource{URL: urlStr, Data: data, MimeType: strings.TrimSpace(mime)}
	res.Type = determineResourceType(res.MimeType, urlStr, data)
	return res, nil
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	res := &Resource{URL: path, Data: data, MimeType: determineMimeType(path)}
	res.Type = determineResourceType(res.MimeType, path, data)
	return res, nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)
	for _, searchPath := range l.searchPaths {
		path := filepath.Join(searchPath, base)
		data, err := readFile(path)
		if err != nil {
			continue
		}
		res := &Resource{URL: path, Data: data, MimeType: determineMimeType(path)}
		res.Type = determineResourceType(res.MimeType, path, data)
		return res, nil
	}
	return nil, fmt.Errorf("resource not found: %s", filename)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxResourceSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxResourceSize {
		return nil, fmt.Errorf("resource larger than %d bytes", MaxResourceSize)
	}
	return data, nil
}

// determineMimeType determines the MIME type of a file
func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".css":
		return "text/css"
	case ".toml":
		return "application/toml"
	default:
		return "application/octet-stream"
	}
}

// determineResourceType classifies by MIME type, then extension, then by
// sniffing the content.
func determineResourceType(mimeType, path string, data []byte) ResourceType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return ResourceTypeImage
	case mimeType == "text/css", mimeType == "application/toml":
		return ResourceTypeStyle
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".tiff", ".tif", ".bmp":
		return ResourceTypeImage
	case ".css", ".toml":
		return ResourceTypeStyle
	}

	if len(data) > 0 && strings.HasPrefix(http.DetectContentType(data), "image/") {
		return ResourceTypeImage
	}
	return ResourceTypeOther
}

// shorten keeps data URIs out of log lines and error messages.
func shorten(ref string) string {
	if len(ref) > 64 {
		return ref[:61] + "..."
	}
	return ref
}
