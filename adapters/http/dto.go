package http

type CreateProfileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Education string `json:"education"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Education string `json:"education"`
}

// No binding tags on purpose: the old API forwarded whatever it got and
// let the database constraints reject bad rows. Requests only fail here
// when the body is not valid JSON.
