package request

// Rating is range-checked by the review service so that it surfaces as
// apperror.ErrInvalidRating instead of a field error.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"max=500"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"max=500"`
}
