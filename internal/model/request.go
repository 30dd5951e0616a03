package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MovieRequest struct {
	Name           string         `json:"name"`
	ImagePath      string         `json:"image_path"`
	Description    string         `json:"description"`
	Duration       int            `json:"duration"`
	Classification Classification `json:"classification"`
	CategoryID     int            `json:"category_id"`
}
