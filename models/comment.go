package models

// CommentUser, yorumun yanında dönen küçültülmüş kullanıcı bilgisi.
type CommentUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Comment, bir restorana bırakılan yorum.
//
// Yorumlar append/delete-only'dir — edit endpoint'i yoktur, client da
// sunmaz. Silme yalnızca yorumun yazarına gösterilir (UI gating).
type Comment struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	UserID       string       `json:"userId"`
	Body         string       `json:"body"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
	User         *CommentUser `json:"user,omitempty"`
}

// AddCommentInput, POST /restaurants/:id/comments gövdesi.
type AddCommentInput struct {
	Body string `json:"body" validate:"required,max=2000"`
}
