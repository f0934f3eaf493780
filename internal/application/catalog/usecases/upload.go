package usecases

import "io"

// ImageUpload carries a decoded multipart file into a usecase.
type ImageUpload struct {
	Content  io.Reader
	Filename string
}
