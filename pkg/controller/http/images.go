package http

import (
	"net/http"
	"path"
	"regexp"
)

var imageNamePattern = regexp.MustCompile(`^/week[0-9]+\.png$`)

// ImageHandler serves week{N}.png files and nothing else
type ImageHandler struct {
	fileSystem http.FileSystem
}

// NewImageHandler creates a new image handler
func NewImageHandler(fileSystem http.FileSystem) *ImageHandler {
	return &ImageHandler{fileSystem: fileSystem}
}

// ServeHTTP implements the http.Handler interface
func (h *ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + r.URL.Path)
	if !imageNamePattern.MatchString(cleanPath) {
		http.NotFound(w, r)
		return
	}

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
}
