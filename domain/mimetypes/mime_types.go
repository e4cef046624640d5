package mimetypes

import "mime"

type MIME string

const (
	Unknown MIME = "unknown"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"
)

// AllowedImages maps the image types accepted for post pictures to the file extension they are stored with.
var AllowedImages = map[MIME]string{
	ImageJPEG: ".jpg",
	ImagePNG:  ".png",
	ImageGIF:  ".gif",
	ImageWEBP: ".webp",
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// AllowedImage resolves a detected content type against the allow-list.
// It returns the matching MIME and its storage extension.
func AllowedImage(detected string) (MIME, string, bool) {
	for m, ext := range AllowedImages {
		if _, ok := Matches(detected, m); ok {
			return m, ext, true
		}
	}
	return Unknown, "", false
}
