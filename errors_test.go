package vivid

import (
	"errors"
	"testing"
)

func TestInvalidParameterErrorMessage(t *testing.T) {
	tests := []struct {
		err  *InvalidParameterError
		want string
	}{
		{&InvalidParameterError{Param: "palette", Value: "Vapor"}, `vivid: unknown palette: "Vapor"`},
		{&InvalidParameterError{Param: "style", Value: ""}, `vivid: unknown style: ""`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorsAsInvalidParameter(t *testing.T) {
	var err error = &InvalidParameterError{Param: "resolution", Value: "0x0"}
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatal("errors.As failed for InvalidParameterError")
	}
	if errors.Is(err, ErrSurfaceUnavailable) {
		t.Error("InvalidParameterError must not match ErrSurfaceUnavailable")
	}
}
