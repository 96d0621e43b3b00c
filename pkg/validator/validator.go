package validator

import (
	"fmt"
	"strings"
)

// ValidationErrors maps a field name to every reason it was rejected.
// All fields are checked eagerly; nothing short-circuits on the first failure.
type ValidationErrors map[string][]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// AllowedPhotoTypes is the MIME allow-list for uploaded photo files.
var AllowedPhotoTypes = []string{"image/jpeg", "image/png"}

// ListingInput is the untrusted field set for creating a listing.
// Pointer fields distinguish "absent" from zero values.
type ListingInput struct {
	Name        *string
	Address     *string
	Description *string
	Price       *float64
	OwnerUserID *int64
}

func ValidateListing(in ListingInput) ValidationErrors {
	errs := make(ValidationErrors)

	checkString(errs, "name", in.Name, 1, 50)
	checkString(errs, "address", in.Address, 1, 500)
	checkString(errs, "description", in.Description, 1, 2000)

	if in.Price == nil {
		errs.Add("price", "Missing data for required field.")
	} else if *in.Price < 0 {
		errs.Add("price", "Must be greater than or equal to 0.")
	}

	if in.OwnerUserID == nil {
		errs.Add("owner_user_id", "Missing data for required field.")
	} else if *in.OwnerUserID < 1 {
		errs.Add("owner_user_id", "Must be greater than or equal to 1.")
	}

	return errs
}

// ValidatePhoto checks the multipart fields of the add-photo request.
// contentType is the declared MIME type of the uploaded file.
func ValidatePhoto(description *string, hasFile bool, contentType string) ValidationErrors {
	errs := make(ValidationErrors)

	checkString(errs, "description", description, 1, 50)

	if !hasFile {
		errs.Add("file", "Missing data for required field.")
	} else if !allowedPhotoType(contentType) {
		errs.Add("file", "Invalid file type. Only jpg/png allowed.")
	}

	return errs
}

// ValidateCredentials checks the signup/login body.
func ValidateCredentials(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Missing data for required field.")
	} else if len(username) > 50 {
		errs.Add("username", "Longer than maximum length 50.")
	}

	if password == "" {
		errs.Add("password", "Missing data for required field.")
	}

	return errs
}

func checkString(errs ValidationErrors, field string, value *string, min, max int) {
	if value == nil {
		errs.Add(field, "Missing data for required field.")
		return
	}
	if len(*value) < min || len(*value) > max {
		errs.Add(field, fmt.Sprintf("Length must be between %d and %d.", min, max))
	}
	if len(strings.TrimSpace(*value)) == 0 {
		errs.Add(field, "Data not provided.")
	}
}

func allowedPhotoType(contentType string) bool {
	for _, t := range AllowedPhotoTypes {
		if contentType == t {
			return true
		}
	}
	return false
}
