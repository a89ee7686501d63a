package sdmx

import "fmt"

// ErrInvalidSdmxResponse is returned when the SDMX endpoint responds with an
// unexpected status code. A 404 means the requested resource id does not
// exist upstream.
type ErrInvalidSdmxResponse struct {
	actualCode int
	uri        string
}

// Error should be called by the user to print out the stringified version of the error
func (e *ErrInvalidSdmxResponse) Error() string {
	return fmt.Sprintf("invalid response from eurostat sdmx api - should be: 200, got: %d, path: %s",
		e.actualCode, e.uri)
}

// Code returns the status code received from the SDMX endpoint
func (e *ErrInvalidSdmxResponse) Code() int {
	return e.actualCode
}
