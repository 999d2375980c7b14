package handler

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=Host Guest"`
}

// loginRequest has no validation rules; missing fields fail as bad credentials.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateUserRequest is a partial update; absent fields are left untouched.
type updateUserRequest struct {
	Email    *string `json:"email"    validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1,max=72"`
	Role     *string `json:"role"     validate:"omitnil,oneof=Host Guest"`
}

type createdResponse struct {
	ID string `json:"_id"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type userResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
