package profile

type CreateProfileRequest struct {
	ID               string `json:"id" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	DOB              string `json:"dob"`
	FatherName       string `json:"father_name"`
	FatherOccupation string `json:"father_occupation"`
	Aadhar           string `json:"aadhar"`
	Address          string `json:"address"`
}

type ProfileResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	DOB              string `json:"dob"`
	FatherName       string `json:"father_name"`
	FatherOccupation string `json:"father_occupation"`
	Aadhar           string `json:"aadhar"`
	Address          string `json:"address"`
}

type CreateProfileResponse struct {
	Message  string          `json:"message"`
	Employee ProfileResponse `json:"employee"`
}
