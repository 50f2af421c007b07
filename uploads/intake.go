// Package uploads validates and stores recipe images.
package uploads

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Intake writes accepted uploads into a fixed directory. Filename
// collisions overwrite the previous file.
type Intake struct {
	Dir string
}

func New(dir string) *Intake {
	return &Intake{Dir: dir}
}

// Accept stores the upload when its extension is allowed and returns the
// sanitized filename. A rejected upload is not an error; the caller just
// leaves the recipe's image field alone.
func (in *Intake) Accept(file multipart.File, header *multipart.FileHeader) (string, bool) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", false
	}

	name := SanitizeFilename(header.Filename)
	path := filepath.Join(in.Dir, name)

	out, err := os.Create(path)
	if err != nil {
		log.Printf("uploads: create %s: %v", path, err)
		return "", false
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		log.Printf("uploads: write %s: %v", path, err)
		return "", false
	}

	in.makeThumbnail(path, name)
	return name, true
}

// makeThumbnail renders a 300px-wide preview next to the original.
// Best effort: a file that passes the extension check but does not
// decode keeps its original upload and simply has no thumbnail.
func (in *Intake) makeThumbnail(path, name string) {
	img, err := imaging.Open(path)
	if err != nil {
		return
	}

	thumbDir := filepath.Join(in.Dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		log.Printf("uploads: thumb dir: %v", err)
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, name)); err != nil {
		log.Printf("uploads: save thumbnail %s: %v", name, err)
	}
}

var unsafeChars = regexp.MustCompile(`[^\w.\-]`)

// SanitizeFilename strips path components and replaces unsafe characters.
func SanitizeFilename(name string) string {
	clean := unsafeChars.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" || clean == "." || clean == ".." {
		return "file"
	}
	return clean
}
