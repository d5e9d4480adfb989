package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Year        string `json:"year" validate:"required,len=4,number"`
	Genre       string `json:"genre" validate:"required,oneof=action comedy drama horror sci-fi thriller other"`
	Director    string `json:"director" validate:"required,max=100"`
	Description string `json:"description"`
}
