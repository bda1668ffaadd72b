package dto

type UploadInput struct {
	Path     string
	Question string
}

type ResultOutput struct {
	Type     string
	Filename string
	Summary  string
	Question string
	Answer   string
}
