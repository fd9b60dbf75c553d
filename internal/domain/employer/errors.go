package employer

import "errors"

var (
	ErrEmployerNotFound   = errors.New("employer not found")
	ErrEmployerNameExists = errors.New("employer with this name already exists")
	ErrEmployerInactive   = errors.New("employer is inactive")
)
