package dto

type AddReviewRequest struct {
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Description string `json:"description"`
}
