package host

import "fmt"

// Guard runs a host call and reports a panic inside it as an error.
func Guard(call func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("host panic: %v", rec)
		}
	}()

	return call()
}
